package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

type vector struct {
	Op   string
	A    string
	B    string
	Want string
	Err  string
}

var ops = map[string]bool{
	"parse": true,
	"add":   true,
	"sub":   true,
	"mul":   true,
}

var errKinds = map[string]bool{
	"":          true,
	"parse":     true,
	"range":     true,
	"currency":  true,
	"overflow":  true,
	"underflow": true,
	"mismatch":  true,
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "vectors", "vectors.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	// Convert the CSV records to a list of vectors
	vecs, err := convertDataToVectors(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %w", err))
	}

	// Generate Go code from the vectors using a template
	code, err := generateGoCode(filepath.Join("scripts", "vectors", "vectors_data.tmpl"), vecs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("vectors_data_test.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 5
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// convertDataToVectors keeps the order of the CSV file, so that
// the generated file diffs cleanly against the source.
func convertDataToVectors(data [][]string) ([]vector, error) {
	vecs := make([]vector, 0, len(data))
	for i, rec := range data {
		vec := vector{
			Op:   rec[0],
			A:    rec[1],
			B:    rec[2],
			Want: rec[3],
			Err:  rec[4],
		}
		if !ops[vec.Op] {
			return nil, fmt.Errorf("record %v: unknown operation %q", i+2, vec.Op)
		}
		if !errKinds[vec.Err] {
			return nil, fmt.Errorf("record %v: unknown error kind %q", i+2, vec.Err)
		}
		if (vec.Want == "") == (vec.Err == "") {
			return nil, fmt.Errorf("record %v: exactly one of want and err must be set", i+2)
		}
		vecs = append(vecs, vec)
	}
	return vecs, nil
}

func generateGoCode(filename string, vecs []vector) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, vecs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
