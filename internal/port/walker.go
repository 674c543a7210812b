package port

import "decomment/internal/domain"

type FileWalker interface {
	Walk(root string) ([]domain.SourceFile, error)
}

type FileReader interface {
	ReadFile(path string) (string, error)
}

type FileWriter interface {
	WriteFile(path, content string) error
}
