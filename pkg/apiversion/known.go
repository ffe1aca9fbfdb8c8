/*
Copyright 2019 Alexander Eldeib.
*/

package apiversion

// Known lists published versions per resource provider, oldest first.
var Known = map[string][]Version{
	"Microsoft.Compute": {
		MustParse("2019-07-01"),
		MustParse("2020-06-01"),
		MustParse("2021-07-01"),
		MustParse("2022-08-01"),
		MustParse("2023-03-01"),
		MustParse("2023-09-01"),
		MustParse("2024-03-01"),
		MustParse("2024-07-01"),
	},
	"Microsoft.ComputeSchedule": {
		MustParse("2024-06-01-preview"),
		MustParse("2024-08-15-preview"),
		MustParse("2024-10-01"),
	},
}
