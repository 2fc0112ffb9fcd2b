package countries

import (
	"strings"

	"github.com/joefazee/countrysearch/internal/validator"
	"github.com/joefazee/countrysearch/models"
)

// Filter returns the records of all whose display name contains query,
// ignoring case. A blank query returns all unchanged. The query is not
// trimmed before matching, so " fra" only matches names containing " fra".
func Filter(all []models.Country, query string) []models.Country {
	if !validator.NotBlank(query) {
		return all
	}

	needle := strings.ToLower(query)
	visible := make([]models.Country, 0, len(all))
	for i := range all {
		if all[i].NameContains(needle) {
			visible = append(visible, all[i])
		}
	}
	return visible
}
