package theme

import "github.com/dtroode/gophframe/internal/model"

// DefaultID is the theme used when a group names no theme or an unknown one.
const DefaultID = "default-dark"

// CustomPrefix prefixes every custom theme id.
const CustomPrefix = "custom-"

func builtins() []model.Theme {
	return []model.Theme{
		{
			ID:   DefaultID,
			Name: "Default Dark",
			Styles: model.ThemeStyles{
				BackgroundColor: "#1e293b",
				TitleFont:       model.FontStyle{Family: "Roboto", Size: 72, Weight: model.WeightBold, Style: model.SlantNormal},
				TitleColor:      "#e2e8f0",
				CaptionFont:     model.FontStyle{Family: "Roboto", Size: 48, Weight: model.WeightNormal, Style: model.SlantNormal},
				CaptionColor:    "#cbd5e1",
				ShadowColor:     "rgba(0, 0, 0, 0.5)",
			},
		},
		{
			ID:   "light-clean",
			Name: "Light & Clean",
			Styles: model.ThemeStyles{
				BackgroundColor: "#f8fafc",
				TitleFont:       model.FontStyle{Family: "Lato", Size: 72, Weight: model.WeightBold, Style: model.SlantNormal},
				TitleColor:      "#0f172a",
				CaptionFont:     model.FontStyle{Family: "Lato", Size: 48, Weight: model.WeightNormal, Style: model.SlantNormal},
				CaptionColor:    "#334155",
				ShadowColor:     "rgba(0, 0, 0, 0.2)",
			},
		},
		{
			ID:   "retro-funk",
			Name: "Retro Funk",
			Styles: model.ThemeStyles{
				BackgroundColor: "#f5d0a9",
				TitleFont:       model.FontStyle{Family: "Playfair Display", Size: 80, Weight: model.WeightBold, Style: model.SlantItalic},
				TitleColor:      "#4a2c2a",
				CaptionFont:     model.FontStyle{Family: "Montserrat", Size: 48, Weight: model.WeightNormal, Style: model.SlantNormal},
				CaptionColor:    "#8c4843",
				ShadowColor:     "rgba(0, 0, 0, 0.3)",
			},
		},
	}
}
