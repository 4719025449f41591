package domain

// AdminSession marks an authenticated admin. At is unix milliseconds.
type AdminSession struct {
	OK bool  `json:"ok"`
	At int64 `json:"at"`
}

// Newsletter is the single persisted subscription record.
type Newsletter struct {
	Email string `json:"email"`
	At    int64  `json:"at"`
}

// Theme is the colour scheme of the storefront shell.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
