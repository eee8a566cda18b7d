package cgats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cmykFixture builds an 11-sample CGATS file. Sample i has CMYK values
// derived from i and base so two fixtures with different bases have a
// known per-cell mean.
func cmykFixture(base float64) string {
	var b strings.Builder
	b.WriteString("CGATS.17\n")
	b.WriteString("ORIGINATOR\t\"cgats test\"\n")
	b.WriteString("NUMBER_OF_FIELDS\t6\n")
	b.WriteString("BEGIN_DATA_FORMAT\n")
	b.WriteString("SAMPLE_ID\tSAMPLE_NAME\tCMYK_C\tCMYK_M\tCMYK_Y\tCMYK_K\n")
	b.WriteString("END_DATA_FORMAT\n")
	b.WriteString("NUMBER_OF_SETS\t11\n")
	b.WriteString("BEGIN_DATA\n")
	for i := 0; i < 11; i++ {
		fmt.Fprintf(&b, "%d\tA%d\t%g\t%g\t%g\t%g\n", i+1, i+1,
			base+float64(i*10), base, base/2, float64(i))
	}
	b.WriteString("END_DATA\n")
	return b.String()
}

const labFixture = "CGATS.17\n" +
	"BEGIN_DATA_FORMAT\n" +
	"SAMPLE_ID\tSAMPLE_NAME\tLAB_L\tLAB_A\tLAB_B\n" +
	"END_DATA_FORMAT\n" +
	"BEGIN_DATA\n" +
	"1\tPaper\t95.12\t-0.5\t2.31\n" +
	"2\tCyan\t55.2\t-37.1\t-50.04\n" +
	"3\tMagenta\t48.3\t74.92\t-3.5\n" +
	"END_DATA\n"

const colorBurstFixture = "ColorBurst Linearization\n" +
	"BEGIN_DATA\n" +
	"0.05\t0.06\t0.07\t0.08\t95.1\t0.2\t-1.3\n" +
	"0.5\t0.45\t0.4\t0.6\t55.7\t-30.2\t-40.5\n" +
	"1.2\t1.1\t1.3\t1.4\t20.3\t5.25\t-2.5\n" +
	"END_DATA\n"

const curveFixture = "File Created by Curve3\r" +
	"BEGIN_DATA_FORMAT\r" +
	"SAMPLE_ID\tCMYK_C\tCMYK_M\tCMYK_Y\tCMYK_K\tLAB_L\tLAB_A\tLAB_B\r" +
	"END_DATA_FORMAT\r" +
	"BEGIN_DATA\r" +
	"1\t0\t0\t0\t0\t95\t0\t0\r" +
	"2\t100\t0\t0\t0\t55\t-37\t-50\r" +
	"END_DATA\r"

// writeFixture writes content into a file under t.TempDir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}
