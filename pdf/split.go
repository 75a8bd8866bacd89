package pdf

import "fmt"

// SplitBySpan partitions the document into consecutive chunks of span pages
// each; the last chunk may be shorter. One output document is produced per
// chunk, in order.
func SplitBySpan(file SourceFile, span int) ([]*Artifact, error) {
	if span <= 0 {
		return nil, validationErr("page span must be positive, got %d", span)
	}
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}

	ctx, err := readContext(file)
	if err != nil {
		return nil, err
	}
	if ctx.PageCount < 1 {
		return nil, validationErr("document %q has no pages", displayName(file))
	}

	base := baseName(file.Name)
	var artifacts []*Artifact
	part := 0
	for start := 1; start <= ctx.PageCount; start += span {
		end := start + span - 1
		if end > ctx.PageCount {
			end = ctx.PageCount
		}
		pages := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}

		data, err := extractPages(ctx, pages)
		if err != nil {
			return nil, err
		}
		part++
		name := fmt.Sprintf("%s_part_%02d.pdf", base, part)
		artifacts = append(artifacts, newPDFArtifact(name, data, len(pages)))
	}

	return artifacts, nil
}

// SplitByRanges produces one output document per comma-separated top-level
// range group, e.g. "1-3,5" yields two documents. Pages within each output
// are in ascending order.
func SplitByRanges(file SourceFile, spec string) ([]*Artifact, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}

	ctx, err := readContext(file)
	if err != nil {
		return nil, err
	}

	groups, err := ParseRangeGroups(spec, ctx.PageCount)
	if err != nil {
		return nil, err
	}

	base := baseName(file.Name)
	artifacts := make([]*Artifact, 0, len(groups))
	for i, pages := range groups {
		data, err := extractPages(ctx, pages)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%s_range_%02d.pdf", base, i+1)
		artifacts = append(artifacts, newPDFArtifact(name, data, len(pages)))
	}

	return artifacts, nil
}

// Extract produces a single document containing exactly the pages named by
// spec, in ascending page order regardless of how the ranges were written.
func Extract(file SourceFile, spec string) (*Artifact, error) {
	if err := ValidatePDFBytes(file); err != nil {
		return nil, err
	}

	ctx, err := readContext(file)
	if err != nil {
		return nil, err
	}

	pages, err := ParsePageRanges(spec, ctx.PageCount)
	if err != nil {
		return nil, err
	}

	data, err := extractPages(ctx, pages)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_extracted.pdf", baseName(file.Name))
	return newPDFArtifact(name, data, len(pages)), nil
}
