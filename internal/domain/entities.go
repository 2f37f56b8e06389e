package domain

// Category groups articles. Articles embed a copy, not a reference.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Author is the byline embedded in every article.
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

type Article struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Slug         string   `json:"slug" yaml:"slug"`
	FeatureImage string   `json:"featureImage" yaml:"featureImage"`
	Images       []string `json:"images" yaml:"images"`
	Content      string   `json:"content" yaml:"content"`
	Excerpt      string   `json:"excerpt" yaml:"excerpt"`
	Category     Category `json:"category" yaml:"category"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
	CreatedAt    string   `json:"createdAt" yaml:"createdAt"`
	Author       Author   `json:"author" yaml:"author"`
}

type Member struct {
	ID           string    `json:"id" yaml:"id"`
	Email        string    `json:"email" yaml:"email"`
	FullName     string    `json:"fullName" yaml:"fullName"`
	Nickname     string    `json:"nickname" yaml:"nickname"`
	Chapter      string    `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	BirthPlace   string    `json:"birthPlace,omitempty" yaml:"birthPlace,omitempty"`
	BirthDate    string    `json:"birthDate,omitempty" yaml:"birthDate,omitempty"`
	Address      string    `json:"address" yaml:"address"`
	Phone        string    `json:"phone" yaml:"phone"`
	Car          string    `json:"car,omitempty" yaml:"car,omitempty"`
	CarYear      int       `json:"carYear,omitempty" yaml:"carYear,omitempty"`
	CarColor     string    `json:"carColor,omitempty" yaml:"carColor,omitempty"`
	LicensePlate string    `json:"licensePlate" yaml:"licensePlate"`
	ShirtSize    ShirtSize `json:"shirtSize" yaml:"shirtSize"`
	JoinReason   string    `json:"joinReason" yaml:"joinReason"`
	RegisteredAt string    `json:"registeredAt" yaml:"registeredAt"`
}

// Page is a static content page addressed by slug.
type Page struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Slug      string `json:"slug" yaml:"slug"`
	Content   string `json:"content" yaml:"content"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

type Merchant struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Category     string `json:"category" yaml:"category"`
	LogoURL      string `json:"logoUrl" yaml:"logoUrl"`
	Address      string `json:"address" yaml:"address"`
	DiscountInfo string `json:"discountInfo" yaml:"discountInfo"`
}

// Banner is the homepage singleton. It has no id and is replaced wholesale.
type Banner struct {
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	Text     string `json:"text" yaml:"text"`
}

type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is what a successful login hands back.
type Session struct {
	User  AdminUser `json:"user"`
	Token string    `json:"token"`
}

// DashboardStats counts the records of the main collections.
type DashboardStats struct {
	Articles  int `json:"articles"`
	Members   int `json:"members"`
	Pages     int `json:"pages"`
	Merchants int `json:"merchants"`
}

// ArticlePage is one page of a filtered article listing plus the filtered total.
type ArticlePage struct {
	Data  []Article `json:"data"`
	Total int       `json:"total"`
}
