package postgres

var billColumns = []string{
	"id",
	"customer_id",
	"total",
	"created_at",
	"items",
}

const (
	insertBill = `
	INSERT INTO bills (
		id,
		customer_id,
		total,
		created_at,
		items
	)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, customer_id, total, created_at, items`

	selectBill = `SELECT id, customer_id, total, created_at, items FROM bills WHERE id = $1`

	deleteBill = `DELETE FROM bills WHERE id = $1`
)
