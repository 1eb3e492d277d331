package types

// EntityID — уникальный идентификатор сущности. Ноль означает «нет сущности».
type EntityID uint64
