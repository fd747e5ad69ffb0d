package audit

import "github.com/quillsign/quillsign/pkg/repository"

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.DocumentID,
		&e.SignerID,
		&e.Action,
		&e.Details,
		&e.IPAddress,
		&e.UserAgent,
		&e.CreatedAt,
	)
	return e, err
}
