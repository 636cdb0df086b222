// Command unitserver serves a small unit-conversion web form.
//
// GET / returns the form; GET or POST /convert with measurement= and
// units= parameters returns the converted value. Input strings longer
// than 256 bytes are rejected.
package main

import (
	"flag"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"

	"github.com/vantara-labs/units/unit"
	"github.com/vantara-labs/units/units"
)

const maxInputLength = 256

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><title>Unit conversion</title></head>
<body>
<h2>Unit conversion</h2>
<form action="/convert" method="post">
  <label>Measurement: <input type="text" name="measurement" maxlength="256" placeholder="57.4 m/s"></label><br>
  <label>Convert to: <input type="text" name="units" maxlength="256" placeholder="mph"></label><br>
  <input type="submit" value="Convert">
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>Unit conversion</title></head>
<body>
<h2>Unit conversion</h2>
<p>{{.Measurement}} = {{.Value}} {{.Units}}</p>
<p><a href="/">convert another</a></p>
</body>
</html>
`))

func serveForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	formTemplate.Execute(w, nil)
}

func serveConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	measurementText := r.FormValue("measurement")
	unitText := r.FormValue("units")
	if len(measurementText) > maxInputLength || len(unitText) > maxInputLength {
		http.Error(w, "input string too long", http.StatusBadRequest)
		return
	}

	meas, err := units.MeasurementFromString(measurementText, 0)
	if err != nil {
		http.Error(w, fmt.Sprintf("cannot parse measurement %q", measurementText), http.StatusBadRequest)
		return
	}
	var target unit.Precise
	if unitText == "*" || unitText == "<base>" {
		target = unit.Precise{Dims: meas.Unit.Dims, Multiplier: 1}
		unitText = units.ToString(target, 0)
	} else {
		target, err = units.UnitFromString(unitText, 0)
		if err != nil {
			http.Error(w, fmt.Sprintf("cannot parse units %q", unitText), http.StatusBadRequest)
			return
		}
	}

	value := units.Convert(meas.Value, meas.Unit, target)
	if math.IsNaN(value) {
		http.Error(w, fmt.Sprintf("no valid conversion from %q to %q", measurementText, unitText), http.StatusBadRequest)
		return
	}

	resultTemplate.Execute(w, struct {
		Measurement string
		Value       string
		Units       string
	}{
		Measurement: measurementText,
		Value:       fmt.Sprintf("%g", value),
		Units:       unitText,
	})
}

func main() {
	addr := flag.String("addr", "localhost:8080", "address to listen on")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveForm)
	mux.HandleFunc("/convert", serveConvert)

	log.Printf("unitserver listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
