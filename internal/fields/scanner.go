package fields

import "github.com/quillsign/quillsign/pkg/repository"

func scanField(s repository.Scanner) (Field, error) {
	var f Field
	err := s.Scan(
		&f.ID,
		&f.DocumentID,
		&f.SignerID,
		&f.Type,
		&f.PageNumber,
		&f.X,
		&f.Y,
		&f.Width,
		&f.Height,
		&f.Value,
		&f.Required,
		&f.CreatedAt,
	)
	return f, err
}
