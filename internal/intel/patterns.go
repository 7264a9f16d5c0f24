package intel

import "regexp"

// Category-specific extraction patterns for Brazilian-market snippets.
var (
	// anyNumber grabs the leading figures in a complaint snippet.
	anyNumber = regexp.MustCompile(`\d+`)

	// investmentAmount matches "R$ 12,5 milhões" style investment figures.
	investmentAmount = regexp.MustCompile(`(?i)R\$\s?[\d,.]+ (milhões|milhão|mil)`)

	// headcount matches hiring or headcount figures.
	headcount = regexp.MustCompile(`(?i)(\d+)\s?(funcionários|colaboradores|vagas)`)

	// revenueAmount matches revenue figures in the financial bucket.
	revenueAmount = regexp.MustCompile(`(?i)R\$\s?[\d,.]+ (bilhões|bilhão|milhões|milhão)`)

	// growthPercent matches "cresceu 23%" style growth figures.
	growthPercent = regexp.MustCompile(`(\d+)%`)
)
