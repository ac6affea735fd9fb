//go:build integration

package integration_test

import "github.com/google/uuid"

var (
	ShopID       = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	CompanyID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	WarehouseA   = uuid.MustParse("33333333-3333-3333-3333-33333333333a")
	WarehouseB   = uuid.MustParse("33333333-3333-3333-3333-33333333333b")
	WarehouseC   = uuid.MustParse("33333333-3333-3333-3333-33333333333c")
	ShipperID    = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	VariantID    = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	OrderID      = uuid.MustParse("66666666-6666-6666-6666-666666666661")
	OtherOrderID = uuid.MustParse("66666666-6666-6666-6666-666666666662")
)

// DirectorySQL магазин, три склада одной компании, курьер и два заказа со статусом CONFIRMED.
const DirectorySQL = `
	INSERT INTO shops (id, name, phone, address)
	VALUES ('11111111-1111-1111-1111-111111111111', 'Shop', '0900000000',
		'{"street": "12 Nguyen Trai", "ward": "Ben Thanh", "district": "Quan 1", "province": "Ho Chi Minh"}');

	INSERT INTO warehouses (id, company_id, name, address, phone) VALUES
		('33333333-3333-3333-3333-33333333333a', '22222222-2222-2222-2222-222222222222', 'HCM', '{"province": "Ho Chi Minh"}', '0281'),
		('33333333-3333-3333-3333-33333333333b', '22222222-2222-2222-2222-222222222222', 'Da Nang', '{"province": "Da Nang"}', '0236'),
		('33333333-3333-3333-3333-33333333333c', '22222222-2222-2222-2222-222222222222', 'Ha Noi', '{"province": "Ha Noi"}', '0241');

	INSERT INTO shippers (id, company_id, name, phone)
	VALUES ('44444444-4444-4444-4444-444444444444', '22222222-2222-2222-2222-222222222222', 'Shipper', '0911111111');

	INSERT INTO product_variants (id, product_name, weight_kg)
	VALUES ('55555555-5555-5555-5555-555555555555', 'Ao thun', 0.250);

	INSERT INTO orders (id, shop_id, status, legacy_address, customer_name, customer_phone, total_amount, final_amount, created_at)
	VALUES
		('66666666-6666-6666-6666-666666666661', '11111111-1111-1111-1111-111111111111', 'CONFIRMED',
			'1 Le Loi, Quan 1, Ho Chi Minh', 'Nguyen Van A', '0922222222', 500000, 530000, NOW() - INTERVAL '2 hours'),
		('66666666-6666-6666-6666-666666666662', '11111111-1111-1111-1111-111111111111', 'CONFIRMED',
			'5 Tran Hung Dao, Ha Noi', 'Tran Thi B', '0933333333', 200000, 200000, NOW() - INTERVAL '1 hour');

	INSERT INTO order_items (id, order_id, variant_id, quantity, price)
	VALUES ('77777777-7777-7777-7777-777777777777', '66666666-6666-6666-6666-666666666661',
		'55555555-5555-5555-5555-555555555555', 4, 125000);
`
