package repo

const defaultLimit = 10

func limitOf(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultLimit
	}
	return limit
}

func offsetOf(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limitOf(limit)
}
