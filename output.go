package main

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

type Record struct {
	Site string `csv:"site"`
	Tag  string `csv:"tag"`
	Text string `csv:"text"`
}

type printer interface {
	print(r *Record) error
	flush() error
}

func newPrinter(format string, w io.Writer) (printer, error) {
	switch format {
	case formatText:
		return &textPrinter{w: w}, nil
	case formatCSV:
		return &csvPrinter{w: w}, nil
	}

	return nil, fmt.Errorf("%w: unknown format %q", errInvalidConfig, format)
}

// textPrinter writes the raw text of every match as soon as it is found.
type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) print(r *Record) error {
	_, err := fmt.Fprintln(p.w, r.Text)
	return err
}

func (p *textPrinter) flush() error {
	return nil
}

// csvPrinter holds all records until flush so the header is written once.
type csvPrinter struct {
	w       io.Writer
	records []*Record
}

func (p *csvPrinter) print(r *Record) error {
	p.records = append(p.records, r)
	return nil
}

func (p *csvPrinter) flush() error {
	if len(p.records) == 0 {
		return nil
	}

	return gocsv.Marshal(&p.records, p.w)
}
