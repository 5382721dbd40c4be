package domain

import (
	"fmt"
	"strings"
)

const PropertyCodePrefix = "Horus"

// FormatPropertyCode - Horus001, Horus002, ...; после 999 ширина растёт
func FormatPropertyCode(seq int) string {
	return fmt.Sprintf("%s%03d", PropertyCodePrefix, seq)
}

// IsBlankCode - код не задан или состоит из пробелов
func IsBlankCode(code *string) bool {
	return code == nil || strings.TrimSpace(*code) == ""
}
