package cluster

// CategoryBucket is the static intent-to-segment lookup used on the live
// chat path. It only shares the "small integer cluster id" vocabulary
// with the real K-Means engine; no clustering runs per message.
//
// Intents missing from the table resolve to bucket 0. Several CRUD-style
// intents are deliberately left out pending product confirmation.
type CategoryBucket struct {
	table map[string]int
}

func NewCategoryBucket() CategoryBucket {
	return CategoryBucket{table: map[string]int{
		"greeting":         0,
		"goodbye":          0,
		"help":             1,
		"generate_report":  2,
		"create_contact":   3,
		"update_contact":   3,
		"delete_contact":   3,
		"search_contact":   3,
		"create_deal":      4,
		"update_deal":      4,
		"delete_deal":      4,
		"create_task":      5,
		"error_handling":   6,
		"fallback":         0,
	}}
}

// Lookup returns the bucket for an intent, defaulting to 0.
func (b CategoryBucket) Lookup(intent string) int {
	return b.table[intent]
}
