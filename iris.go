package mlexplore

import (
	"bytes"
	_ "embed"
)

//go:embed data/iris.csv
var irisCSV []byte

// Iris returns the classic 150-sample iris dataset bundled with the package:
// four numeric features (sepal and petal dimensions in cm) and one of three
// species per sample. The notebook-style walkthroughs in this repository all
// run against it.
func Iris() *Dataset {
	ds, err := LoadCSV(bytes.NewReader(irisCSV), CSVConfig{})
	if err != nil {
		// The file is compiled into the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic("mlexplore: embedded iris dataset is malformed: " + err.Error())
	}
	return ds
}
