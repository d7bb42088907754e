// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/tensile-ml/tensile/tensor"
)

// The public package is a re-export; one end-to-end flow is enough to keep
// the aliases honest.
func TestPublicAPIRoundTrip(t *testing.T) {
	shape, err := tensor.NewShape(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	x, err := tensor.Ones[float64](shape)
	if err != nil {
		t.Fatal(err)
	}
	row, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
	if err != nil {
		t.Fatal(err)
	}

	sum, err := x.Add(row)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 3, 4, 2, 3, 4}
	for i, v := range sum.Data() {
		if v != want[i] {
			t.Fatalf("element %d = %v, want %v", i, v, want[i])
		}
	}

	ints := tensor.Convert[int64](sum)
	if ints.Data()[2] != 4 {
		t.Fatalf("Convert: got %d, want 4", ints.Data()[2])
	}

	if _, err := tensor.NewShape(2, 0); err == nil {
		t.Fatal("NewShape accepted a zero dimension")
	}
}
