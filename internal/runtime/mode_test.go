package runtime

import "testing"

func TestGetMode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Mode
	}{
		{"unset is prod", "", ModeProd},
		{"one is dev", "1", ModeDev},
		{"other values are prod", "true", ModeProd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DevEnv, tt.value)
			if got := GetMode(); got != tt.want {
				t.Errorf("GetMode() = %v, want %v", got, tt.want)
			}
			if IsDev() != (tt.want == ModeDev) {
				t.Errorf("IsDev() disagrees with GetMode()")
			}
		})
	}
}
