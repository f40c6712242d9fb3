package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// Clock retorna o instante atual; substituível em testes
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}
