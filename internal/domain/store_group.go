package domain

import "strconv"

// NoStoreID — корзина позиций без магазина.
const NoStoreID int64 = 0

// NoStoreName — подпись для позиций без магазина.
const NoStoreName = "Sin tienda"

// StoreGroup — позиции корзины одного магазина (только для отображения и сообщений подтверждения).
type StoreGroup struct {
	StoreID   int64             `json:"store_id"`
	StoreName string            `json:"store_name"`
	Items     []ReservationItem `json:"items"`
}

// Store — запись справочника магазинов.
type Store struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StoreNames — справочник storeID → название.
type StoreNames map[int64]string

// Name — название магазина; если его нет в справочнике — "Store #<id>".
func (n StoreNames) Name(storeID int64) string {
	if storeID == NoStoreID {
		return NoStoreName
	}
	if name, ok := n[storeID]; ok && name != "" {
		return name
	}
	return "Store #" + strconv.FormatInt(storeID, 10)
}

// GroupByStore — разбивает позиции по магазинам.
// Порядок групп — порядок первого появления магазина во входном списке.
// Входной срез не изменяется; names может быть nil.
func GroupByStore(items []ReservationItem, names StoreNames) []StoreGroup {
	groups := make([]StoreGroup, 0)
	index := make(map[int64]int)

	for i := range items {
		storeID := items[i].StoreID
		if storeID < 0 {
			storeID = NoStoreID
		}
		pos, ok := index[storeID]
		if !ok {
			pos = len(groups)
			index[storeID] = pos
			groups = append(groups, StoreGroup{
				StoreID:   storeID,
				StoreName: names.Name(storeID),
				Items:     []ReservationItem{},
			})
		}
		groups[pos].Items = append(groups[pos].Items, items[i])
	}
	return groups
}

// StoreIDs — уникальные магазины позиций в порядке первого появления (без "no-store").
func StoreIDs(items []ReservationItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for i := range items {
		id := items[i].StoreID
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
