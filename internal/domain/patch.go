package domain

// Inputs carry the caller supplied fields of a create. Ids, slugs and
// timestamps are derived by the service.

type ArticleInput struct {
	Title        string   `json:"title"`
	FeatureImage string   `json:"featureImage"`
	Images       []string `json:"images"`
	Content      string   `json:"content"`
	Excerpt      string   `json:"excerpt"`
	Category     Category `json:"category"`
	Keywords     []string `json:"keywords"`
}

type PageInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type MemberInput struct {
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Nickname     string    `json:"nickname"`
	Chapter      string    `json:"chapter,omitempty"`
	BirthPlace   string    `json:"birthPlace,omitempty"`
	BirthDate    string    `json:"birthDate,omitempty"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Car          string    `json:"car,omitempty"`
	CarYear      int       `json:"carYear,omitempty"`
	CarColor     string    `json:"carColor,omitempty"`
	LicensePlate string    `json:"licensePlate"`
	ShirtSize    ShirtSize `json:"shirtSize"`
	JoinReason   string    `json:"joinReason"`
}

type MerchantInput struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	LogoURL      string `json:"logoUrl"`
	Address      string `json:"address"`
	DiscountInfo string `json:"discountInfo"`
}

type CategoryInput struct {
	Name string `json:"name"`
}

// Patches hold only the fields an update may touch. A nil field is left
// unchanged; a non-nil field overwrites.

type ArticlePatch struct {
	Title        *string   `json:"title,omitempty"`
	FeatureImage *string   `json:"featureImage,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Content      *string   `json:"content,omitempty"`
	Excerpt      *string   `json:"excerpt,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Keywords     *[]string `json:"keywords,omitempty"`
	CreatedAt    *string   `json:"createdAt,omitempty"`
	Author       *Author   `json:"author,omitempty"`
}

// Apply merges p over a. The slug follows a non-empty title.
func (p ArticlePatch) Apply(a Article) Article {
	setString(&a.Title, p.Title)
	setString(&a.FeatureImage, p.FeatureImage)
	setStrings(&a.Images, p.Images)
	setString(&a.Content, p.Content)
	setString(&a.Excerpt, p.Excerpt)
	if p.Category != nil {
		a.Category = *p.Category
	}
	setStrings(&a.Keywords, p.Keywords)
	setString(&a.CreatedAt, p.CreatedAt)
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.Title != nil && *p.Title != "" {
		a.Slug = Slugify(*p.Title)
	}
	return a
}

type PagePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Apply merges p over pg. The caller refreshes UpdatedAt.
func (p PagePatch) Apply(pg Page) Page {
	setString(&pg.Title, p.Title)
	setString(&pg.Content, p.Content)
	if p.Title != nil && *p.Title != "" {
		pg.Slug = Slugify(*p.Title)
	}
	return pg
}

type MemberPatch struct {
	Email        *string    `json:"email,omitempty"`
	FullName     *string    `json:"fullName,omitempty"`
	Nickname     *string    `json:"nickname,omitempty"`
	Chapter      *string    `json:"chapter,omitempty"`
	BirthPlace   *string    `json:"birthPlace,omitempty"`
	BirthDate    *string    `json:"birthDate,omitempty"`
	Address      *string    `json:"address,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Car          *string    `json:"car,omitempty"`
	CarYear      *int       `json:"carYear,omitempty"`
	CarColor     *string    `json:"carColor,omitempty"`
	LicensePlate *string    `json:"licensePlate,omitempty"`
	ShirtSize    *ShirtSize `json:"shirtSize,omitempty"`
	JoinReason   *string    `json:"joinReason,omitempty"`
	RegisteredAt *string    `json:"registeredAt,omitempty"`
}

func (p MemberPatch) Apply(m Member) Member {
	setString(&m.Email, p.Email)
	setString(&m.FullName, p.FullName)
	setString(&m.Nickname, p.Nickname)
	setString(&m.Chapter, p.Chapter)
	setString(&m.BirthPlace, p.BirthPlace)
	setString(&m.BirthDate, p.BirthDate)
	setString(&m.Address, p.Address)
	setString(&m.Phone, p.Phone)
	setString(&m.Car, p.Car)
	if p.CarYear != nil {
		m.CarYear = *p.CarYear
	}
	setString(&m.CarColor, p.CarColor)
	setString(&m.LicensePlate, p.LicensePlate)
	if p.ShirtSize != nil {
		m.ShirtSize = *p.ShirtSize
	}
	setString(&m.JoinReason, p.JoinReason)
	setString(&m.RegisteredAt, p.RegisteredAt)
	return m
}

type MerchantPatch struct {
	Name         *string `json:"name,omitempty"`
	Category     *string `json:"category,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	Address      *string `json:"address,omitempty"`
	DiscountInfo *string `json:"discountInfo,omitempty"`
}

func (p MerchantPatch) Apply(m Merchant) Merchant {
	setString(&m.Name, p.Name)
	setString(&m.Category, p.Category)
	setString(&m.LogoURL, p.LogoURL)
	setString(&m.Address, p.Address)
	setString(&m.DiscountInfo, p.DiscountInfo)
	return m
}

type CategoryPatch struct {
	Name *string `json:"name,omitempty"`
}

func (p CategoryPatch) Apply(c Category) Category {
	setString(&c.Name, p.Name)
	return c
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v != nil {
		*dst = append([]string(nil), (*v)...)
	}
}
