package domain

import "time"

// Property is a single real-estate listing. Lat/Lng stay strings: the map
// widget on the client consumes them verbatim and the server never does
// arithmetic on them.
type Property struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"` // "For Sale" | "For Rent"
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Area        int       `json:"area"`
	ImageURL    string    `json:"imageUrl"`
	Lat         string    `json:"lat"`
	Lng         string    `json:"lng"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProperty carries the writable fields of a listing. Featured is optional
// and defaults to false when absent.
type NewProperty struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Address     string  `json:"address"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Area        int     `json:"area"`
	ImageURL    string  `json:"imageUrl"`
	Lat         string  `json:"lat"`
	Lng         string  `json:"lng"`
	Featured    *bool   `json:"featured"`
}

// PropertyPatch is a partial update: nil fields are left untouched. ID and
// CreatedAt are not part of the patch and can never be overwritten.
type PropertyPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status"`
	Type        *string  `json:"type"`
	Location    *string  `json:"location"`
	Address     *string  `json:"address"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Area        *int     `json:"area"`
	ImageURL    *string  `json:"imageUrl"`
	Lat         *string  `json:"lat"`
	Lng         *string  `json:"lng"`
	Featured    *bool    `json:"featured"`
}

// Post is a blog article.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"imageUrl"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewPost struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
	Excerpt  string `json:"excerpt"`
}

type PostPatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	ImageURL *string `json:"imageUrl"`
	Excerpt  *string `json:"excerpt"`
}

// Message is a contact-form submission. Read starts false and is flipped by
// the inbox mark-read operation.
type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MessagePatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Read    *bool   `json:"read"`
}
