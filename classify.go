package accelbench

import "strconv"

// NoClass is returned by Argmax for an empty vector. It is never a valid class.
const NoClass = -1

// Argmax is the index of the largest value, the leftmost one on ties.
func Argmax(a []float32) int {
	if len(a) == 0 {
		return NoClass
	}
	max := a[0]
	var retVal int
	for i := 1; i < len(a); i++ {
		if a[i] > max {
			max = a[i]
			retVal = i
		}
	}
	return retVal
}

func (b *Bench) className(class int) string {
	if class >= 0 && class < len(b.conf.Classes) {
		return b.conf.Classes[class]
	}
	return "class " + strconv.Itoa(class)
}
