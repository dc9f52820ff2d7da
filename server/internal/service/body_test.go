package service

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMergePatch(t *testing.T) {
	tests := []struct {
		name   string
		target string
		patch  string
		want   string
	}{
		{"add member", `{"a":1}`, `{"b":2}`, `{"a":1,"b":2}`},
		{"replace member", `{"a":1}`, `{"a":"x"}`, `{"a":"x"}`},
		{"remove member", `{"a":1,"b":2}`, `{"a":null}`, `{"b":2}`},
		{"nested merge", `{"p":{"x":1,"y":2}}`, `{"p":{"y":null,"z":3}}`, `{"p":{"x":1,"z":3}}`},
		{"array replaces", `{"a":[1,2]}`, `{"a":[3]}`, `{"a":[3]}`},
		{"object over scalar", `{"a":1}`, `{"a":{"b":1}}`, `{"a":{"b":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target, patch, want any
			for _, p := range []struct {
				raw string
				dst *any
			}{{tt.target, &target}, {tt.patch, &patch}, {tt.want, &want}} {
				if err := json.Unmarshal([]byte(p.raw), p.dst); err != nil {
					t.Fatalf("decode %s: %v", p.raw, err)
				}
			}

			got := mergePatch(target, patch)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("mergePatch() = %v, want %v", got, want)
			}
		})
	}
}

func TestPreconditionsCheck(t *testing.T) {
	const current = `W/"abc"`

	tests := []struct {
		name    string
		pre     Preconditions
		exists  bool
		wantErr bool
	}{
		{"none", Preconditions{}, true, false},
		{"if-none-match on absent", Preconditions{IfNoneMatch: "*"}, false, false},
		{"if-none-match on present", Preconditions{IfNoneMatch: "*"}, true, true},
		{"if-match strong form", Preconditions{IfMatch: `"abc"`}, true, false},
		{"if-match list", Preconditions{IfMatch: `"x", W/"abc"`}, true, false},
		{"if-match mismatch", Preconditions{IfMatch: `"x"`}, true, true},
		{"if-match absent", Preconditions{IfMatch: `"abc"`}, false, true},
		{"if-match empty tag", Preconditions{IfMatch: `""`}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			etag := current
			if !tt.exists {
				etag = ""
			}
			err := tt.pre.check(tt.exists, etag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeObject(t *testing.T) {
	obj, err := decodeObject([]byte("  "))
	if err != nil || len(obj) != 0 {
		t.Fatalf("empty body: %v %v", obj, err)
	}

	obj, err = decodeObject([]byte(`{"n":12345678901234567890}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if n, ok := obj["n"].(json.Number); !ok || n.String() != "12345678901234567890" {
		t.Errorf("numbers should decode losslessly, got %#v", obj["n"])
	}
}
