package tracking

import "testing"

// TestCoerceInt は整数変換の受け付け範囲を検証する。
func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int
		wantErr bool
	}{
		{name: "int", input: 120, want: 120},
		{name: "JSONデコード結果のfloat64", input: float64(120), want: 120},
		{name: "数値文字列", input: "120", want: 120},
		{name: "小数のfloat64は切り捨て", input: float64(120.9), want: 120},
		{name: "非数値文字列はエラー", input: "abc", wantErr: true},
		{name: "bool型はエラー", input: true, wantErr: true},
		{name: "nilはエラー", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("coerceInt(%v) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerceInt(%v) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("coerceInt(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestCoerceFloat は浮動小数点数変換の受け付け範囲を検証する。
func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr bool
	}{
		{name: "float64", input: 87.5, want: 87.5},
		{name: "int", input: 87, want: 87.0},
		{name: "数値文字列", input: "87.5", want: 87.5},
		{name: "ゼロは有効値", input: float64(0), want: 0},
		{name: "非数値文字列はエラー", input: "high", wantErr: true},
		{name: "マップ型はエラー", input: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceFloat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("coerceFloat(%v) expected error, got %f", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerceFloat(%v) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("coerceFloat(%v) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}
