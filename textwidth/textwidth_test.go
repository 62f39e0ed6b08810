package textwidth

import "testing"

func TestWidth(t *testing.T) {
	if Width("x") != minWidth {
		t.Errorf("short label should clamp to minimum width, got %v", Width("x"))
	}
	if Width("Elastic Load Balancing") <= Width("EC2") {
		t.Error("longer label should measure wider")
	}
	// Wide runes count as two cells.
	if Width("データベース") <= Width("abcdef") {
		t.Error("east-asian wide label should measure wider than same-length ascii")
	}
}

func TestMeasure(t *testing.T) {
	widths := Measure(map[string]string{
		"ec2": "EC2",
		"elb": "Elastic Load Balancing",
	})
	if len(widths) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(widths))
	}
	if widths["elb"] <= widths["ec2"] {
		t.Errorf("widths not ordered by label length: %v", widths)
	}
}
