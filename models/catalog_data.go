package models

// CatalogSeed is the fixed product set of the Converse Oaxaca store. It is
// loaded once into the catalog repository and never mutated at runtime.
var CatalogSeed = []Product{
	// Calzado adulto
	{
		ID:          1,
		Name:        "Chuck Taylor All Star High Top Negro",
		ShortName:   "Chuck Taylor High Negro",
		Price:       1499,
		Description: "El icónico Chuck Taylor All Star que ha definido el estilo urbano por generaciones. Confeccionado en lona de alta calidad con la clásica puntera de caucho y suela vulcanizada.",
		Image:       "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=600&q=80",
			"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        false,
		IsBestseller: true,
		Color:        "Negro",
	},
	{
		ID:          2,
		Name:        "Chuck Taylor All Star Low Top Blanco",
		ShortName:   "Chuck Taylor Low Blanco",
		Price:       1399,
		Description: "Versión low top del legendario Chuck Taylor en blanco óptico. Perfecto para combinar con cualquier outfit. Lona premium, plantilla OrthoLite.",
		Image:       "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=600&q=80",
			"https://images.unsplash.com/photo-1465453869711-7e174808ace9?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        false,
		IsBestseller: true,
		Color:        "Blanco",
	},
	{
		ID:          3,
		Name:        "Chuck 70 High Top Vintage Canvas",
		ShortName:   "Chuck 70 Vintage",
		Price:       1899,
		Description: "La versión premium del Chuck Taylor inspirada en el modelo de los años 70. Lona más gruesa, mejor amortiguación y detalles vintage.",
		Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=600&q=80",
			"https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Negro",
	},
	{
		ID:          4,
		Name:        "Chuck Taylor All Star Platform Blanco",
		ShortName:   "Chuck Taylor Platform",
		Price:       1699,
		Description: "El clásico Chuck Taylor elevado con una plataforma de 4cm. Mantiene la esencia original con un toque moderno que estiliza cualquier look.",
		Image:       "https://images.unsplash.com/photo-1463100099107-aa0980c362e6?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1463100099107-aa0980c362e6?w=600&q=80",
			"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        true,
		IsBestseller: true,
		Color:        "Blanco",
	},
	{
		ID:          5,
		Name:        "Run Star Hike Platform Negro",
		ShortName:   "Run Star Hike",
		Price:       2199,
		Description: "Diseño vanguardista con plataforma escalonada y suela dentada. Una reinterpretación audaz del Chuck Taylor para quienes buscan destacar.",
		Image:       "https://images.unsplash.com/photo-1595341888016-a392ef81b7de?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1595341888016-a392ef81b7de?w=600&q=80",
			"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Negro",
	},
	{
		ID:          6,
		Name:        "Chuck Taylor All Star High Top Rojo",
		ShortName:   "Chuck Taylor Rojo",
		Price:       1499,
		Description: "El clásico Chuck Taylor en rojo vibrante. Un statement piece que añade personalidad a cualquier outfit.",
		Image:       "https://images.unsplash.com/photo-1465453869711-7e174808ace9?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1465453869711-7e174808ace9?w=600&q=80",
			"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        false,
		IsBestseller: true,
		Color:        "Rojo",
	},
	{
		ID:          7,
		Name:        "Chuck 70 Low Top Parchment",
		ShortName:   "Chuck 70 Parchment",
		Price:       1799,
		Description: "Versión low top del premium Chuck 70 en tono parchment (crema). Lona de algodón orgánico, plantilla de espuma con memoria.",
		Image:       "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=600&q=80",
			"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Crema",
	},
	{
		ID:          8,
		Name:        "Chuck Taylor All Star Leather Negro",
		ShortName:   "Chuck Taylor Leather",
		Price:       1899,
		Description: "Versión en piel genuina del icónico Chuck Taylor. Acabado premium que mejora con el uso.",
		Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=600&q=80",
			"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=600&q=80",
		},
		Category:     CategoryFootwear,
		IsNew:        false,
		IsBestseller: true,
		Color:        "Negro",
	},

	// Accesorios
	{
		ID:          9,
		Name:        "Mochila Converse Go 2",
		ShortName:   "Mochila Converse",
		Price:       899,
		Description: "Mochila Converse Go 2 con compartimento principal amplio, bolsillo frontal y tirantes acolchados. Logo Converse bordado.",
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80",
		},
		Category:     CategoryAccessories,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Negro",
	},
	{
		ID:          10,
		Name:        "Collar Estrella All Star",
		ShortName:   "Collar Converse",
		Price:       349,
		Description: "Collar con dije de estrella All Star en acero inoxidable. Cadena ajustable, estilo urbano.",
		Image:       "https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=600&q=80",
		},
		Category:     CategoryAccessories,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Plateado",
	},

	// Juvenil
	{
		ID:          11,
		Name:        "Chuck Taylor All Star Juvenil Negro",
		ShortName:   "Chuck Taylor Juvenil",
		Price:       1199,
		Description: "El clásico Chuck Taylor en tallas juveniles. Mismo estilo icónico adaptado para jóvenes. Lona duradera y suela de caucho.",
		Image:       "https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=600&q=80",
		},
		Category:     CategoryYouth,
		IsNew:        false,
		IsBestseller: true,
		Color:        "Negro",
	},
	{
		ID:          12,
		Name:        "Chuck Taylor All Star Juvenil Blanco",
		ShortName:   "Chuck Taylor Juvenil Blanco",
		Price:       1199,
		Description: "Chuck Taylor en blanco para jóvenes. El estilo clásico que combina con todo, en tallas juveniles.",
		Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=600&q=80",
		},
		Category:     CategoryYouth,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Blanco",
	},

	// Infantil
	{
		ID:          13,
		Name:        "Chuck Taylor All Star Infantil Rojo",
		ShortName:   "Chuck Taylor Infantil",
		Price:       899,
		Description: "El icónico Chuck Taylor para los más pequeños. Fácil de poner con velcro o agujetas elásticas.",
		Image:       "https://images.unsplash.com/photo-1514989940723-e8e51635b782?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1514989940723-e8e51635b782?w=600&q=80",
		},
		Category:     CategoryKids,
		IsNew:        false,
		IsBestseller: true,
		Color:        "Rojo",
	},
	{
		ID:          14,
		Name:        "Chuck Taylor All Star Infantil Azul",
		ShortName:   "Chuck Taylor Infantil Azul",
		Price:       899,
		Description: "Chuck Taylor en azul vibrante para niños. Diseño clásico con cierre fácil.",
		Image:       "https://images.unsplash.com/photo-1520256862855-398228c41684?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1520256862855-398228c41684?w=600&q=80",
		},
		Category:     CategoryKids,
		IsNew:        true,
		IsBestseller: false,
		Color:        "Azul",
	},
}
