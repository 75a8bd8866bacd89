package pdf

import "fmt"

// RemovePages produces a document containing every page except the ones
// named by spec. Removing all pages is rejected since the output would be
// empty.
func RemovePages(file SourceFile, spec string) (*Artifact, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}

	ctx, err := readContext(file)
	if err != nil {
		return nil, err
	}

	removed, err := ParsePageRanges(spec, ctx.PageCount)
	if err != nil {
		return nil, err
	}

	drop := make(map[int]bool, len(removed))
	for _, page := range removed {
		drop[page] = true
	}

	var keep []int
	for p := 1; p <= ctx.PageCount; p++ {
		if !drop[p] {
			keep = append(keep, p)
		}
	}
	if len(keep) == 0 {
		return nil, validationErr("cannot remove all %d pages", ctx.PageCount)
	}

	data, err := extractPages(ctx, keep)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_pages_removed.pdf", baseName(file.Name))
	return newPDFArtifact(name, data, len(keep)), nil
}
