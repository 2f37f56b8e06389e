package seed

import (
	"time"

	"github.com/MrSnakeDoc/klub/internal/domain"
)

// Data is the initial content of every collection.
type Data struct {
	Categories []domain.Category `yaml:"categories"`
	Articles   []domain.Article  `yaml:"articles"`
	Members    []domain.Member   `yaml:"members"`
	Pages      []domain.Page     `yaml:"pages"`
	Banner     domain.Banner     `yaml:"banner"`
	Merchants  []domain.Merchant `yaml:"merchants"`
}

const (
	unsplash   = "https://images.unsplash.com/"
	imgParams  = "?q=80&w=2070&auto=format&fit=crop"
	seedAvatar = "https://i.pravatar.cc/40?u=admin"
)

// Defaults returns a fresh copy of the built-in content. Members and pages
// are stamped with now.
func Defaults(now time.Time) Data {
	ts := domain.Timestamp(now)

	cats := []domain.Category{
		{ID: "1", Name: "Popular News"},
		{ID: "2", Name: "Event"},
		{ID: "3", Name: "Tips & Trik"},
		{ID: "4", Name: "Berita Nasional"},
		{ID: "5", Name: "Chapter Jateng"},
	}
	author := domain.Author{Name: "Admin ANLOC", Avatar: seedAvatar}

	article := func(id, title, slug, photo, content, excerpt string, cat domain.Category, created string, keywords ...string) domain.Article {
		return domain.Article{
			ID:           id,
			Title:        title,
			Slug:         slug,
			FeatureImage: unsplash + photo + imgParams,
			Images:       []string{},
			Content:      content,
			Excerpt:      excerpt,
			Category:     cat,
			Keywords:     keywords,
			CreatedAt:    created,
			Author:       author,
		}
	}

	return Data{
		Categories: cats,
		Articles: []domain.Article{
			article("101", "Musyawarah Nasional ANLOC", "musyawarah-nasional-anloc", "photo-1552519507-da3b142c6e3d",
				"Pesta Demokrasi, ANLOC Gelar MUNAS Dengan Konsep Pemilihan Langsung. Acara ini dihadiri oleh perwakilan dari seluruh chapter di Indonesia.",
				"Pesta Demokrasi, ANLOC Gelar MUNAS Dengan Konsep Pemilihan Langsung...",
				cats[3], "2023-11-20T10:00:00Z", "munas", "anloc", "nasional"),
			article("102", "Hangatnya Kebersamaan Jambore ANLOC Jatim", "jambore-anloc-jatim", "photo-1617531322474-3c3354c4f05e",
				"Keseruan acara Jambore daerah chapter Jawa Timur yang diadakan di Batu, Malang.",
				"Keseruan acara Jambore daerah chapter Jawa Timur...",
				cats[3], "2023-11-19T11:00:00Z", "jambore", "jatim"),
			article("103", "Peresmian Pengurus Pusat ANLOC Periode Baru", "peresmian-pengurus-pusat", "photo-1580414057902-b42f04d9a13b",
				"Pengurus pusat ANLOC yang baru resmi dilantik dan siap membawa perubahan.",
				"Pengurus pusat ANLOC yang baru resmi dilantik...",
				cats[3], "2023-11-18T09:00:00Z", "pengurus", "pusat"),
			article("104", "Kopdar Rutin Chapter Banten Jawara", "kopdar-banten-jawara", "photo-1541443131-153PAAD-543B",
				"Akran Nya Anggota ANLOC Chapter Banten Jawara.",
				"Akran Nya Anggota ANLOC Chapter Banten Jawara...",
				cats[3], "2023-11-17T09:00:00Z", "kopdar", "banten"),
			article("201", "Kekeluargaan dan Persaudaraan Sebagai Benefit Nyata Member Lintas Chapter", "benefit-member-lintas-chapter", "photo-1555554317-76621b302d33",
				"Kekeluargaan dalam ANLOC sebagai benefit nyata member lintas chapter Komunitas Otomotif merupakan salah satu media dalam menyatukan para pecinta otomotif.",
				"Kekeluargaan dalam ANLOC sebagai benefit nyata member lintas chapter Komunitas Otomotif...",
				cats[0], "2023-11-15T10:00:00Z", "kekeluargaan", "chapter"),
			article("202", "Mengenal Rem Blong, dan Cara Mengatasinya", "mengenal-rem-blong", "photo-1610466024956-43cde24a1b53",
				"Penyebab dan cara mengatasi rem blong pada mobil Anda.",
				"Penyebab dan cara mengatasi rem blong...",
				cats[0], "2023-11-14T11:00:00Z", "rem", "tips"),
			article("203", "4 Hal yang Harus Diketahui Agar Tidak Terjaring Kamera ETLE", "tips-hindari-etle", "photo-1578496479701-7b0844a4e153",
				"Tips agar perjalanan Anda aman dan tidak terkena tilang elektronik.",
				"Tips agar perjalanan Anda aman dan tidak terkena...",
				cats[0], "2023-11-13T09:00:00Z", "etle", "tilang"),
			article("301", "Hangatnya Kebersamaan dan Persaudaraan Dalam Gelaran Jamnas ANLOC 2023", "jamnas-anloc-2023", "photo-1533122638-34858e921325",
				"Rangkuman keseruan Jambore Nasional ANLOC yang diadakan di Yogyakarta dengan partisipasi ribuan member dari seluruh Indonesia.",
				"Rangkuman keseruan Jambore Nasional ANLOC yang diadakan di Yogyakarta...",
				cats[1], "2023-11-10T10:00:00Z", "jamnas", "2023", "event"),
			article("302", "Pesta Demokrasi, ANLOC Gelar MUNAS Dengan Konsep Pemilihan Langsung", "pesta-demokrasi-munas", "photo-1580273916551-585a4b5553a2",
				"Detail acara Musyawarah Nasional yang berlangsung meriah.",
				"Detail acara Musyawarah Nasional...",
				cats[1], "2023-11-09T11:00:00Z", "munas", "event"),
			article("401", "Tips Beli Mobil Bekas, Jangan Sampai Tertipu", "tips-beli-mobil-bekas", "photo-1599912027806-cfec9f5944b6",
				"Hal-hal yang perlu diperhatikan saat membeli mobil bekas agar tidak menyesal di kemudian hari. Cek kondisi mesin, bodi, dan surat-surat.",
				"Hal-hal yang perlu diperhatikan saat membeli mobil bekas agar tidak menyesal...",
				cats[2], "2023-11-05T10:00:00Z", "mobil bekas", "tips"),
			article("402", "Salah Kaprah, Lampu Hazard Disaat Hujan", "salah-kaprah-lampu-hazard", "photo-1610455326392-a9b71b7b0c44",
				"Kapan waktu yang tepat untuk menggunakan lampu hazard? Simak penjelasannya.",
				"Kapan waktu yang tepat untuk menggunakan lampu hazard?...",
				cats[2], "2023-11-04T11:00:00Z", "hazard", "safety"),
			article("501", "Touring Chapter Jateng ke Dieng", "touring-chapter-jateng-dieng", "photo-1502877338535-766e1452684a",
				"Puluhan member Chapter Jateng menempuh rute Semarang menuju Dataran Tinggi Dieng dalam touring akhir tahun.",
				"Puluhan member Chapter Jateng menempuh rute Semarang menuju Dieng...",
				cats[4], "2023-11-02T08:00:00Z", "touring", "jateng"),
		},
		Members: []domain.Member{
			{
				ID:           "1",
				Email:        "johndoe@example.com",
				FullName:     "John Doe",
				Nickname:     "John",
				Chapter:      "Banten Jawara",
				Address:      "Jl. Mobil Keren No. 1",
				Phone:        "081234567890",
				LicensePlate: "B 1234 XYZ",
				Car:          "Nissan Livina",
				CarColor:     "Hitam",
				CarYear:      2021,
				ShirtSize:    domain.ShirtL,
				JoinReason:   "Suka dengan komunitasnya",
				RegisteredAt: ts,
			},
			{
				ID:           "2",
				Email:        "janedoe@example.com",
				FullName:     "Jane Doe",
				Nickname:     "Jane",
				Chapter:      "Jawa Timur",
				Address:      "Jl. Otomotif No. 2",
				Phone:        "081298765432",
				LicensePlate: "L 5678 ABC",
				Car:          "Nissan Livina",
				CarColor:     "Putih",
				CarYear:      2022,
				ShirtSize:    domain.ShirtM,
				JoinReason:   "Menambah teman dan relasi",
				RegisteredAt: ts,
			},
		},
		Pages: []domain.Page{
			{ID: "1", Title: "Tentang Kami", Slug: "tentang-kami", Content: "Ini adalah halaman tentang kami. Kami adalah komunitas pecinta mobil yang solid.", UpdatedAt: ts},
			{ID: "2", Title: "Kontak", Slug: "kontak", Content: "Hubungi kami di email: kontak@klubmobil.com", UpdatedAt: ts},
		},
		Banner: domain.Banner{
			ImageURL: unsplash + "photo-1511919884226-fd3cad34687c" + imgParams,
			Text:     "Selamat Datang di ANLOC.ID!",
		},
		Merchants: []domain.Merchant{
			{
				ID:           "1",
				Name:         "Warung Kopi Mantap",
				Category:     "Kuliner",
				LogoURL:      unsplash + "photo-1559925393-8be0ec4767c8" + imgParams,
				Address:      "Jl. Kopi No. 1, Jakarta",
				DiscountInfo: "Diskon 15% untuk minuman",
			},
			{
				ID:           "2",
				Name:         "Bengkel Cepat Jaya",
				Category:     "Otomotif",
				LogoURL:      unsplash + "photo-1581291518633-83b4ebd1d83e" + imgParams,
				Address:      "Jl. Otomotif Raya No. 5, Bandung",
				DiscountInfo: "Gratis cek mesin & diskon 10% jasa servis",
			},
		},
	}
}
