package gcsfetch

import "testing"

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri        string
		bucket     string
		object     string
		wantErr    bool
	}{
		{uri: "gs://backups/sms-20251005.xml", bucket: "backups", object: "sms-20251005.xml"},
		{uri: "gs://backups/2025/10/dump.xml", bucket: "backups", object: "2025/10/dump.xml"},
		{uri: "gs://backups", wantErr: true},
		{uri: "gs:///dump.xml", wantErr: true},
		{uri: "/tmp/dump.xml", wantErr: true},
		{uri: "", wantErr: true},
	}

	for _, tc := range tests {
		bucket, object, err := ParseURI(tc.uri)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseURI(%q) accepted invalid URI", tc.uri)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseURI(%q): %v", tc.uri, err)
			continue
		}
		if bucket != tc.bucket || object != tc.object {
			t.Errorf("ParseURI(%q) = %q, %q", tc.uri, bucket, object)
		}
	}
}

func TestIsURI(t *testing.T) {
	if !IsURI("gs://bucket/object") {
		t.Error("gs:// URI not recognized")
	}
	if IsURI("/var/backups/dump.xml") {
		t.Error("local path recognized as URI")
	}
}
