package encoding

import (
	"bytes"
	"fmt"

	"github.com/gorgonia/accelbench"
)

// Multi is a Recorder that forwards to every recorder it holds.
type Multi []accelbench.Recorder

func (m Multi) Encode(s accelbench.Sample) error {
	var errs manyErr
	for _, r := range m {
		if err := r.Encode(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (m Multi) Flush() error {
	var errs manyErr
	for _, r := range m {
		if err := r.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type manyErr []error

func (err manyErr) Error() string {
	var buf bytes.Buffer
	for _, e := range err {
		fmt.Fprintln(&buf, e.Error())
	}
	return buf.String()
}
