// Package fixtures holds the demo dataset the seeding pipeline loads into
// an empty store. Invoice records reference customers by the fixture-local
// synthetic id, not the store-assigned one.
package fixtures

type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

type Invoice struct {
	CustomerID string // fixture-local customer id
	Amount     int64  // integer cents
	Status     string
	Date       string // YYYY-MM-DD
}

type Revenue struct {
	Month   string
	Revenue int64
}

type Dataset struct {
	Users     []User
	Customers []Customer
	Invoices  []Invoice
	Revenue   []Revenue
}

// Placeholder returns the fixed demo dataset.
func Placeholder() Dataset {
	return Dataset{
		Users: []User{
			{
				ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
				Name:     "User",
				Email:    "user@nextmail.com",
				Password: "123456",
			},
		},
		Customers: []Customer{
			{
				ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
				Name:     "Evil Rabbit",
				Email:    "evil@rabbit.com",
				ImageURL: "/customers/evil-rabbit.png",
			},
			{
				ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
				Name:     "Delba de Oliveira",
				Email:    "delba@oliveira.com",
				ImageURL: "/customers/delba-de-oliveira.png",
			},
			{
				ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
				Name:     "Lee Robinson",
				Email:    "lee@robinson.com",
				ImageURL: "/customers/lee-robinson.png",
			},
			{
				ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
				Name:     "Michael Novotny",
				Email:    "michael@novotny.com",
				ImageURL: "/customers/michael-novotny.png",
			},
			{
				ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
				Name:     "Amy Burns",
				Email:    "amy@burns.com",
				ImageURL: "/customers/amy-burns.png",
			},
			{
				ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
				Name:     "Balazs Orban",
				Email:    "balazs@orban.com",
				ImageURL: "/customers/balazs-orban.png",
			},
		},
		Invoices: []Invoice{
			{CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 15795, Status: "pending", Date: "2022-12-06"},
			{CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 20348, Status: "pending", Date: "2022-11-14"},
			{CustomerID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Amount: 3040, Status: "paid", Date: "2022-10-29"},
			{CustomerID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Amount: 44800, Status: "paid", Date: "2023-09-10"},
			{CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 34577, Status: "pending", Date: "2023-08-05"},
			{CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 54246, Status: "pending", Date: "2023-07-16"},
			{CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Amount: 666, Status: "pending", Date: "2023-06-27"},
			{CustomerID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Amount: 32545, Status: "paid", Date: "2023-06-09"},
			{CustomerID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Amount: 1250, Status: "paid", Date: "2023-06-17"},
			{CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 8546, Status: "paid", Date: "2023-06-07"},
			{CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 500, Status: "paid", Date: "2023-08-19"},
			{CustomerID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Amount: 8945, Status: "paid", Date: "2023-06-03"},
			{CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 1000, Status: "paid", Date: "2022-06-05"},
		},
		Revenue: []Revenue{
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
			{Month: "Mar", Revenue: 2200},
			{Month: "Apr", Revenue: 2500},
			{Month: "May", Revenue: 2322},
			{Month: "Jun", Revenue: 3250},
			{Month: "Jul", Revenue: 3500},
			{Month: "Aug", Revenue: 3700},
			{Month: "Sep", Revenue: 2500},
			{Month: "Oct", Revenue: 2800},
			{Month: "Nov", Revenue: 3000},
			{Month: "Dec", Revenue: 4800},
		},
	}
}
