package signers

import "github.com/quillsign/quillsign/pkg/repository"

func scanSigner(s repository.Scanner) (Signer, error) {
	var sg Signer
	err := s.Scan(
		&sg.ID,
		&sg.DocumentID,
		&sg.Name,
		&sg.Email,
		&sg.SignOrder,
		&sg.Status,
		&sg.Token,
		&sg.SignedAt,
		&sg.IPAddress,
		&sg.UserAgent,
		&sg.CreatedAt,
	)
	return sg, err
}
