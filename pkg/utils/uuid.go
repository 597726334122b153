package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera IDs curtos para snapshots do cache e linhas de raw_documents
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
