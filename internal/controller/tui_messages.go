package controller

// Message types.
type renamesMsg struct {
	files   int
	renames []renameItem
}

// List item types.
type renameItem struct {
	file     string
	category string
	old      string
	new      string
	scope    string
}

func (r renameItem) FilterValue() string {
	return r.old + " " + r.new + " " + r.category
}

func renameItems(file string, rows [][]string) []renameItem {
	items := make([]renameItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, renameItem{
			file:     file,
			category: row[0],
			old:      row[1],
			new:      row[2],
			scope:    row[3],
		})
	}

	return items
}
