package units

import "testing"

func TestBinarySizeConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"KiB equals 1024", KiB, 1024},
		{"MiB equals 1024*KiB", MiB, 1024 * KiB},
		{"GiB equals 1024*MiB", GiB, 1024 * MiB},
		{"TiB equals 1024*GiB", TiB, 1024 * GiB},
		{"PiB equals 1024*TiB", PiB, 1024 * TiB},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestIEC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    int64
		want string
	}{
		{"zero is bare", 0, "0"},
		{"negative is bare", -5, "-5"},
		{"below one KiB", 512, "512 B"},
		{"exact KiB", 1024, "1 KiB"},
		{"truncates not rounds", 2047, "1 KiB"},
		{"exact MiB", MiB, "1 MiB"},
		{"mib multiple", 3 * MiB, "3 MiB"},
		{"exact GiB", GiB, "1 GiB"},
		{"exact TiB", TiB, "1 TiB"},
		{"exact PiB", PiB, "1 PiB"},
		{"beyond PiB stays PiB", 2048 * PiB, "2048 PiB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IEC(tt.v); got != tt.want {
				t.Errorf("IEC(%d) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
