package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestLogMethod(t *testing.T) {
	tests := []struct {
		terminated, punch bool
		want              Method
	}{
		{true, true, Punch},
		{true, false, StandardOrientation},
		{false, true, StandardOrientation},
		{false, false, StandardOrientation},
	}
	for _, test := range tests {
		got := logMethod(test.terminated, test.punch)
		if got != test.want {
			t.Errorf("logMethod(%v, %v): got %v, wanted %v",
				test.terminated, test.punch, got, test.want)
		}
	}
}

func TestGaussInputLocate(t *testing.T) {
	lines, err := ReadLines("testfiles/ch.com")
	if err != nil {
		t.Fatal(err)
	}
	block, method, err := gaussInput{}.Locate(lines)
	if err != nil {
		t.Fatal(err)
	}
	if method != None {
		t.Errorf("got method %v, wanted None", method)
	}
	want := []string{
		"C 0.0000000 0.0000000 -0.3250000",
		"H 0.0000000 0.0000000 0.7689000",
	}
	if !reflect.DeepEqual(block, want) {
		t.Errorf("got %v, wanted %v", block, want)
	}
}

func TestGaussInputNoChargeLine(t *testing.T) {
	lines := []string{"#P HF", "", "title only", ""}
	_, _, err := gaussInput{}.Locate(lines)
	if !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("got %v, wanted ErrBlockNotFound", err)
	}
}

func TestGaussLogLocate(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		method Method
		block  []string
	}{
		{
			name:   "terminated with punch",
			file:   "testfiles/ch.log",
			method: Punch,
			block:  []string{"C 0. 0. -0.325", "H 0. 0. 0.7689"},
		},
		{
			name:   "terminated without punch",
			file:   "testfiles/termnopunch.log",
			method: StandardOrientation,
			block: []string{
				"6 0.000000 0.000000 -0.325000",
				"1 0.000000 0.000000 0.768900",
			},
		},
		{
			name:   "second archive wins",
			file:   "testfiles/twojobs.log",
			method: Punch,
			block:  []string{"C 0. 0. -0.325", "H 0. 0. 0.7689"},
		},
		{
			name:   "no termination takes last orientation",
			file:   "testfiles/noterm.log",
			method: StandardOrientation,
			block: []string{
				"8 0.000000 0.000000 0.119157",
				"1 0.000000 0.763239 -0.477628",
				"1 0.000000 -0.763239 -0.477628",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lines, err := ReadLines(test.file)
			if err != nil {
				t.Fatal(err)
			}
			block, method, err := gaussLog{}.Locate(lines)
			if err != nil {
				t.Fatal(err)
			}
			if method != test.method {
				t.Errorf("got method %v, wanted %v", method, test.method)
			}
			if !reflect.DeepEqual(block, test.block) {
				t.Errorf("got %v, wanted %v", block, test.block)
			}
		})
	}
}

func TestGaussLogNeitherSection(t *testing.T) {
	lines, err := ReadLines("testfiles/none.log")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = gaussLog{}.Locate(lines)
	if !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("got %v, wanted ErrBlockNotFound", err)
	}
}

func TestPunchCoords(t *testing.T) {
	tests := []struct {
		name  string
		punch []string
		want  []string
	}{
		{
			name: "wrapped archive",
			punch: []string{
				`1\1\GINC-NODE\SP\RHF\STO-3G\H2O1\USER\23-Aug-2026\0\\#P HF/STO-`,
				`3G\\water\\0,1\O,0.,0.,0.119\H,0.,0.757,-0.477\H,0.,-0.757,-0.4`,
				`77\\Version=ES64L-G16RevC.01\HF=-74.96\\@`,
			},
			want: []string{
				"O 0. 0. 0.119",
				"H 0. 0.757 -0.477",
				"H 0. -0.757 -0.477",
			},
		},
		{
			name: "optimization flag dropped",
			punch: []string{
				`1\1\GINC\FOpt\RHF\STO-3G\H2O1\USER\23-Aug-2026\0\\#P HF OPT\\t\\0`,
				`,1\O,0,0.,0.,0.119\H,0,0.,0.757,-0.477\H,0,0.,-0.757,-0.477\\@`,
			},
			want: []string{
				"O 0. 0. 0.119",
				"H 0. 0.757 -0.477",
				"H 0. -0.757 -0.477",
			},
		},
		{
			name:  "too few sections",
			punch: []string{`1\1\GINC-NODE\SP\RHF\STO-3G\H2O1\USER\0\\route only`},
			want:  nil,
		},
		{
			name:  "nothing located",
			punch: nil,
			want:  nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := punchCoords(test.punch)
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("got %v, wanted %v", got, test.want)
			}
		})
	}
}
