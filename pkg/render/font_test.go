package render

import "testing"

func TestLoadFace(t *testing.T) {
	small, err := LoadFace(12)
	if err != nil {
		t.Fatalf("LoadFace: %v", err)
	}
	large, err := LoadFace(36)
	if err != nil {
		t.Fatalf("LoadFace: %v", err)
	}
	if small.Metrics().Height >= large.Metrics().Height {
		t.Fatalf("larger size should give a taller face")
	}
}
