package tracking

import (
	"fmt"
	"strconv"
)

// coerceInt はJSONデコード結果の値を整数に変換する。
// クライアントによっては数値フィールドを文字列で送るため、両方を受け付ける。
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("整数に変換できません: %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("整数に変換できない型です: %T", v)
	}
}

// coerceFloat はJSONデコード結果の値を浮動小数点数に変換する。
func coerceFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("数値に変換できません: %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("数値に変換できない型です: %T", v)
	}
}
