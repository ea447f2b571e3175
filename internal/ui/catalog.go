package ui

// Category is one entry of the link directory.
type Category struct {
	Name     string
	Path     string
	Summary  string
	Disabled bool // listed, but only leads to the "coming soon" page
}

func (c Category) Title() string       { return c.Name }
func (c Category) FilterValue() string { return c.Name }

func (c Category) Description() string {
	if c.Disabled {
		return "Coming soon"
	}
	return c.Summary
}

var categories = []Category{
	{Name: "Streaming", Path: "/streaming", Summary: "Stream movies and shows"},
	{Name: "Apps & Softwares", Path: "/apps", Summary: "Download applications"},
	{Name: "Books & Novels", Path: "/books", Summary: "Read and download books"},
	{Name: "Artificial Intelligence", Path: "/ai", Summary: "AI tools and resources"},
	{Name: "Games", Path: "/games", Summary: "Gaming content"},
	{Name: "Torrents", Path: "/torrents", Summary: "Torrent resources"},
	{Name: "Dark Web", Path: "/darkweb", Disabled: true},
	{Name: "Breach & Leaks", Path: "/breaches", Disabled: true},
}

// Categories returns the directory entries in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}
