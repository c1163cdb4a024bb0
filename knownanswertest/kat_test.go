package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownAnswers(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		suite, err := Load(path)
		require.NoError(t, err)
		tolerance, ok := new(big.Rat).SetString(suite.Tolerance)
		require.True(t, ok)
		for i := range suite.Cases {
			c := &suite.Cases[i]
			t.Run(filepath.Base(path)+"/"+c.Name, func(t *testing.T) {
				require.NoError(t, c.Check(tolerance))
			})
		}
		t.Logf("Checked %d cases from %s", len(suite.Cases), path)
	}
}

func TestCase_CheckDetectsWrongAnswers(t *testing.T) {
	tolerance := big.NewRat(1, 1000000)
	two, three := 2, 3
	testCases := []Case{
		{Name: "wrongRoot", Poly: []int64{-2, 0, 1}, RealRoots: []string{"-1.4142136", "1.415"}},
		{Name: "wrongRootCount", Poly: []int64{-2, 0, 1}, RealRoots: []string{"1.4142136"}},
		{Name: "wrongSum", Poly: []int64{-1, -1, 1}, RealSum: "-1"},
		{Name: "wrongProduct", Poly: []int64{-1, -1, 1}, RealProduct: "1"},
		{Name: "wrongNonReal", Poly: []int64{1, 0, 1}, NumNonReal: &three},
		{
			Name:      "wrongBoxCount",
			Poly:      []int64{1, 0, 1},
			BoxCounts: []BoxCount{{Box: []string{"-1", "1", "-2", "2"}, Count: 1}},
		},
		{
			Name:      "rootOnBoundary",
			Poly:      []int64{1, 0, 1},
			BoxCounts: []BoxCount{{Box: []string{"-1", "1", "1", "2"}, Count: 1}},
		},
		{
			Name:           "wrongIntervalCount",
			Poly:           []int64{24, -50, 35, -10, 1},
			IntervalCounts: []IntervalCount{{Lo: "1", Hi: "4", Count: 4}},
		},
		{Name: "badRational", Poly: []int64{-2, 0, 1}, RealSum: "one"},
	}
	for _, testCase := range testCases {
		require.Errorf(t, testCase.Check(tolerance), "case %s", testCase.Name)
	}

	// The same polynomials with the right answers
	correct := Case{
		Name:           "correct",
		Poly:           []int64{-2, 0, -1, 0, 1},
		RealRoots:      []string{"-1.4142136", "1.4142136"},
		NumNonReal:     &two,
		RealSum:        "0",
		RealProduct:    "-2",
		BoxCounts:      []BoxCount{{Box: []string{"-1", "1", "1/2", "2"}, Count: 1}},
		IntervalCounts: []IntervalCount{{Lo: "-2", Hi: "0", Count: 1}},
	}
	require.NoError(t, correct.Check(tolerance))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		contents  string
		expectErr bool
	}{
		{"tolerance: \"1/100\"\ncases:\n  - name: a\n    poly: [1, 1]\n", false},
		{"tolerance: \"1/100\"\ncases:\n  - name: a\n    poly: []\n", true},
		{"tolerance: \"small\"\ncases: []\n", true},
		{"tolerance: \"1/100\"\ncases:\n  - name: a\n    poly: [1, 1]\n    unknown: 1\n", true},
		{"tolerance: \"1/100\"\ncases:\n  - name: a\n    poly: [1, 1]\n    box_counts:\n      - {box: [\"0\", \"1\"], count: 0}\n", true},
	}
	for i, testCase := range testCases {
		path := filepath.Join(dir, "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testCase.contents), 0o600))
		suite, err := Load(path)
		if testCase.expectErr {
			require.Errorf(t, err, "test case %d", i)
			continue
		}
		require.NoErrorf(t, err, "test case %d", i)
		require.NoError(t, suite.Check())
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
