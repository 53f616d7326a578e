package codec_test

import (
	"testing"

	"github.com/arthur-debert/shelf/codec"
)

func TestByName(t *testing.T) {
	for name, want := range map[string]codec.Codec{
		"json": codec.JSON,
		"yaml": codec.YAML,
		"yml":  codec.YAML,
	} {
		c, err := codec.ByName(name)
		if err != nil {
			t.Errorf("ByName(%q): %v", name, err)
			continue
		}
		if c != want {
			t.Errorf("ByName(%q) returned %s", name, c.Name())
		}
	}

	if _, err := codec.ByName("toml"); err == nil {
		t.Error("expected an error for an unknown codec name")
	}
}

func TestGarbageDoesNotDecode(t *testing.T) {
	type payload struct {
		Records []struct{ ID string } `json:"records" yaml:"records"`
	}

	var p payload
	if err := codec.JSON.Unmarshal([]byte("{not json"), &p); err == nil {
		t.Error("json should reject malformed input")
	}
	if err := codec.YAML.Unmarshal([]byte("\x00:\x00garbage: ["), &p); err == nil {
		t.Error("yaml should reject malformed input")
	}
}
