// Command minqueue prints the minimum of every window of K consecutive
// integers. Input on stdin is "N K" followed by N integers.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/agbru/karatmul/internal/app"
	apperrors "github.com/agbru/karatmul/internal/errors"
	"github.com/agbru/karatmul/internal/minqueue"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout, "minqueue")
		return
	}
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(in io.Reader, out, errOut io.Writer) int {
	values, k, err := readInput(in)
	if err == nil {
		var minima []int64
		if minima, err = minqueue.SlidingMin(values, k); err == nil {
			err = writeMinima(out, minima)
		}
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

func readInput(in io.Reader) ([]int64, int, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	next := func(field string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, apperrors.WrapError(err, "reading %s", field)
			}
			return 0, apperrors.ValidationError{Field: field, Message: "missing value"}
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("not an integer: %q", sc.Text())}
		}
		return v, nil
	}

	n, err := next("n")
	if err != nil {
		return nil, 0, err
	}
	if n < 0 {
		return nil, 0, apperrors.ValidationError{Field: "n", Message: "must be non-negative"}
	}
	k, err := next("k")
	if err != nil {
		return nil, 0, err
	}
	if k < 1 || k > n {
		return nil, 0, apperrors.ValidationError{Field: "k", Message: fmt.Sprintf("window %d outside [1, %d]", k, n)}
	}

	values := make([]int64, 0, min(n, 1<<20))
	for i := int64(0); i < n; i++ {
		v, err := next(fmt.Sprintf("value %d", i+1))
		if err != nil {
			return nil, 0, err
		}
		values = append(values, v)
	}
	return values, int(k), nil
}

func writeMinima(out io.Writer, minima []int64) error {
	w := bufio.NewWriter(out)
	var buf []byte
	for i, m := range minima {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, m, 10)
		if len(buf) > 4096 {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return err
	}
	return w.Flush()
}
