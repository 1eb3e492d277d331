package event

const (
	GameStarted     EventType = "GameStarted"     // Партия началась
	GamePaused      EventType = "GamePaused"      // Пауза включена/выключена, Data — bool
	ItemCaught      EventType = "ItemCaught"      // Пойман предмет, Data — ScoreData
	ItemMissed      EventType = "ItemMissed"      // Предмет упал мимо
	HazardHit       EventType = "HazardHit"       // Опасность задела игрока или прорвалась, Data — LivesData
	HazardDestroyed EventType = "HazardDestroyed" // Башня уничтожила опасность, Data — ScoreData
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	GameOver        EventType = "GameOver"        // Партия окончена, Data — ScoreData
	NewBest         EventType = "NewBest"         // Побит рекорд, Data — ScoreData
	GameReset       EventType = "GameReset"       // Сброс к готовности
)

// ScoreData — полезная нагрузка событий со счетом
type ScoreData struct {
	Gained int
	Score  int
	Combo  int
}

// LivesData — полезная нагрузка события попадания
type LivesData struct {
	Lost  int
	Lives int
}
