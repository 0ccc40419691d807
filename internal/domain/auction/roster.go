package auction

import "fmt"

// PlayerDescriptor is one roster entry as supplied by the ingestion source,
// before the session assigns ids.
type PlayerDescriptor struct {
	Name      string
	Role      Role
	BasePrice int
	ImageURL  string
}

// BuildRoster turns ingested descriptors into session players, assigning
// sequential 1-based ids in ingestion order and starting every player
// unsold. The whole batch is rejected on the first invalid descriptor.
func BuildRoster(descriptors []PlayerDescriptor) ([]Player, error) {
	players := make([]Player, 0, len(descriptors))
	for idx, d := range descriptors {
		p := Player{
			ID:        idx + 1,
			Name:      d.Name,
			Role:      d.Role,
			BasePrice: d.BasePrice,
			ImageURL:  d.ImageURL,
			Status:    StatusUnsold,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", idx+1, err)
		}
		players = append(players, p)
	}

	return players, nil
}
