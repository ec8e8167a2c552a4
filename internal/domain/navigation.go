package domain

// NavItem is one entry of the panel navigation tree.
type NavItem struct {
	Label    string    `json:"label"`
	Icon     string    `json:"icon"`
	To       string    `json:"to,omitempty"`
	Children []NavItem `json:"children,omitempty"`
}

// NavigationItems is the static menu served to the panel shell.
var NavigationItems = []NavItem{
	{Label: "Dashboard", Icon: "i-lucide-layout-dashboard", To: "/"},
	{
		Label: "Manga",
		Icon:  "i-lucide-book-open",
		Children: []NavItem{
			{Label: "List", Icon: "i-lucide-list", To: "/manga"},
			{Label: "Create", Icon: "i-lucide-plus", To: "/manga/create"},
		},
	},
	{Label: "Users", Icon: "i-lucide-users", To: "/users"},
	{Label: "Settings", Icon: "i-lucide-settings", To: "/settings"},
}
