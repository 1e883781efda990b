package accelbench

import (
	"fmt"

	"github.com/gorgonia/accelbench/dataset"
)

var progress = [...]byte{'-', '\\', '|', '/'}

// report redraws the live report. Sampled records also get the image, the
// raw output and the expected and actual classes.
func (b *Bench) report(i int, r dataset.Record, expected, actual int, seconds float32) error {
	c := b.con
	c.SetCursorPosition(1, 1)
	fmt.Fprintf(c, "%06d: %.2f fps %c\n", i, 1/seconds, progress[i%len(progress)])

	if !b.sampled(i) {
		return nil
	}

	fmt.Fprint(c, "\nImage:")
	for j := range r.Red {
		c.SetBackgroundColor(r.Red[j], r.Green[j], r.Blue[j])
		if j%b.conf.Width == 0 {
			fmt.Fprint(c, "\n")
		}
		fmt.Fprint(c, "  ")
	}
	fmt.Fprint(c, "\n")
	c.ResetBackgroundColor()

	fmt.Fprint(c, "\nResult:\n")
	if err := b.drv.PrintModelOutputVectors(c, b.conf.Output); err != nil {
		return accelError("print output", err)
	}

	if actual == expected {
		c.SetForegroundColor(0, 255, 0)
	} else {
		c.SetForegroundColor(255, 0, 0)
	}
	// trailing blanks overwrite a longer line left by the previous sample
	fmt.Fprintf(c, "%s expected class = %s, actual class = %s         \n",
		b.conf.Dataset, b.className(expected), b.className(actual))
	c.ResetForegroundColor()
	return nil
}
