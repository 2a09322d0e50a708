package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumenjs/lumen"
	"github.com/lumenjs/lumen/dom/fakedom"
)

func TestRecorderCountsRenders(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(WithNamespace("test"), WithRegistry(reg))

	opts := lumen.Options{}
	rec.Install(&opts)
	lumen.SetOptions(opts)
	defer lumen.SetOptions(lumen.Options{})

	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")
	lumen.Render(lumen.H("div", nil, "x"), doc, container)

	metricFamilies, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(metricFamilies) == 0 {
		t.Fatalf("expected at least one registered metric family")
	}
}
