package scenario

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
)

// WriteCurvesCSV writes one row per sampled income: y, i_is, i_lm.
func WriteCurvesCSV(path string, res *Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodeCurvesCSV(f, res)
}

func EncodeCurvesCSV(out io.Writer, res *Result) error {
	if res == nil {
		return errors.New("result is nil")
	}
	if len(res.IS) != len(res.LM) {
		return errors.New("IS and LM samples differ in length")
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"y", "i_is", "i_lm"}); err != nil {
		return err
	}
	for k := range res.IS {
		row := []string{
			fmtFloat(res.IS[k].Y),
			fmtFloat(res.IS[k].I),
			fmtFloat(res.LM[k].I),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
