package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// IDGenerator gera identificadores para novas entidades
type IDGenerator func() (string, error)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

// PrefixedID gera identificadores no formato <prefixo>-<nanoid>, ex: report-Xa81kLm0Qe
func PrefixedID(prefix string) IDGenerator {
	return func() (string, error) {
		id, err := GenerateID()
		if err != nil {
			return "", err
		}
		return prefix + "-" + id, nil
	}
}
