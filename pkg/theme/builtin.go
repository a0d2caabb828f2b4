package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thEmberTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thDraculaTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme returns the blue-on-black night theme.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#111827",
		Foreground: "#f9fafb",
		Dim:        "#6b7280",
		Accent:     "#3b82f6",

		Title:    "#bfdbfe",
		Subtitle: "#93c5fd",
		Clock:    "#93c5fd",
		Caption:  "#60a5fa",
		Quote:    "#dbeafe",
		Author:   "#60a5fa",

		ProgressFilled: "#60a5fa",
		ProgressEmpty:  "#1f2937",
		ProgressDone:   "#93c5fd",

		Border:   "#374151",
		HelpKey:  "#3b82f6",
		HelpDesc: "#6b7280",
	}
}

// thEmberTheme returns a warm orange-on-charcoal theme.
func thEmberTheme() Theme {
	return Theme{
		Name:       "ember",
		Background: "#1c1917",
		Foreground: "#fafaf9",
		Dim:        "#78716c",
		Accent:     "#f97316",

		Title:    "#fed7aa",
		Subtitle: "#fdba74",
		Clock:    "#fdba74",
		Caption:  "#fb923c",
		Quote:    "#ffedd5",
		Author:   "#fb923c",

		ProgressFilled: "#f97316",
		ProgressEmpty:  "#292524",
		ProgressDone:   "#facc15",

		Border:   "#44403c",
		HelpKey:  "#f97316",
		HelpDesc: "#78716c",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Title:    "#fabd2f",
		Subtitle: "#d5c4a1",
		Clock:    "#83a598",
		Caption:  "#928374",
		Quote:    "#ebdbb2",
		Author:   "#d3869b",

		ProgressFilled: "#b8bb26",
		ProgressEmpty:  "#3c3836",
		ProgressDone:   "#fabd2f",

		Border:   "#504945",
		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme returns the arctic Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Title:    "#eceff4",
		Subtitle: "#d8dee9",
		Clock:    "#88c0d0",
		Caption:  "#81a1c1",
		Quote:    "#e5e9f0",
		Author:   "#b48ead",

		ProgressFilled: "#5e81ac",
		ProgressEmpty:  "#3b4252",
		ProgressDone:   "#a3be8c",

		Border:   "#434c5e",
		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Title:    "#f8f8f2",
		Subtitle: "#ff79c6",
		Clock:    "#8be9fd",
		Caption:  "#6272a4",
		Quote:    "#f8f8f2",
		Author:   "#ff79c6",

		ProgressFilled: "#bd93f9",
		ProgressEmpty:  "#44475a",
		ProgressDone:   "#50fa7b",

		Border:   "#44475a",
		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}
