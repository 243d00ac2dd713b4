package strategy

const dayMillis = int64(24 * 60 * 60 * 1000)
