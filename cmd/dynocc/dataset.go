package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/oliviergimenez/dynocc/occu"
)

// writeDataset writes one CSV row of 0/1 symbols per site.
func writeDataset(w io.Writer, data *occu.Dataset) error {
	cw := csv.NewWriter(w)
	record := make([]string, data.Design().Occasions())
	for i := 0; i < data.Sites(); i++ {
		for t, y := range data.History(i) {
			record[t] = strconv.Itoa(y)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readDataset parses a CSV of detection histories against a design.
// Symbol and shape validation is left to occu.NewDataset.
func readDataset(r io.Reader, design occu.Design) (*occu.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = design.Occasions()

	var histories [][]int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		history := make([]int, len(record))
		for t, field := range record {
			y, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("parsing symbol at occasion %d: %w", t, err)
			}
			history[t] = y
		}
		histories = append(histories, history)
	}
	return occu.NewDataset(design, histories, nil)
}
