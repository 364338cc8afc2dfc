package output

// FileEntry represents a file in a tree listing. Status is one of the
// file status constants and selects the entry's color.
type FileEntry struct {
	Path   string
	Status string
}

// RenderFileTree renders a file tree with aligned, status-colored
// annotations.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var result string
	for _, f := range files {
		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		spaces := make([]byte, padding)
		for i := range spaces {
			spaces[i] = ' '
		}
		result += f.Path + string(spaces) + StatusStyle(f.Status).Render(f.Status) + "\n"
	}
	return result
}
