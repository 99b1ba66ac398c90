// internal/document/tokens.go
package document

import "github.com/xkilldash9x/mockup-cli/api/schemas"

// DefaultTokens returns the baseline token table new documents start from. The
// layout defaults reference several of these paths (spacing.sm, spacing.md), so a
// document that drops them falls back to numeric defaults instead.
func DefaultTokens() schemas.DesignTokens {
	return schemas.DesignTokens{
		Colors: map[string]string{
			"primary":    "#2563EB",
			"secondary":  "#64748B",
			"background": "#FFFFFF",
			"surface":    "#F8FAFC",
			"text":       "#0F172A",
			"textMuted":  "#64748B",
			"border":     "#E2E8F0",
			"error":      "#DC2626",
			"success":    "#16A34A",
			"warning":    "#D97706",
		},
		Typography: schemas.Typography{
			FontFamily: map[string]string{
				"body":    "Inter",
				"heading": "Inter",
				"mono":    "JetBrains Mono",
			},
			FontSize: map[string]float64{
				"xs":  12,
				"sm":  14,
				"md":  16,
				"lg":  20,
				"xl":  24,
				"xxl": 32,
			},
			FontWeight: map[string]float64{
				"regular":  400,
				"medium":   500,
				"semibold": 600,
				"bold":     700,
			},
			LineHeight: map[string]float64{
				"tight":   1.2,
				"normal":  1.5,
				"relaxed": 1.75,
			},
		},
		Spacing: map[string]float64{
			"xs": 4,
			"sm": 8,
			"md": 16,
			"lg": 24,
			"xl": 32,
		},
		Radii: map[string]float64{
			"none": 0,
			"sm":   4,
			"md":   8,
			"lg":   16,
			"full": 9999,
		},
		Shadows: map[string]string{
			"sm": "0 1px 2px rgba(0,0,0,0.05)",
			"md": "0 4px 6px rgba(0,0,0,0.1)",
			"lg": "0 10px 15px rgba(0,0,0,0.1)",
		},
	}
}
