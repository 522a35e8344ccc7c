package domain

// Дефолты контента: публичная страница должна рендериться всегда,
// поэтому при пустом сторе отдаём полностью заполненные значения,
// а не ошибку и не частичный объект.

func DefaultProfile() Profile {
	return Profile{
		Name:     "Your Name",
		Role:     "Creative Developer & 3D Artist",
		Bio:      "I'm a passionate developer with expertise in creating immersive web experiences.",
		Email:    "hello@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		SocialLinks: SocialLinks{
			GitHub:   "#",
			LinkedIn: "#",
			Twitter:  "#",
		},
		Stats: Stats{
			Experience: "5+",
			Projects:   "50+",
			Clients:    "30+",
			Awards:     "15+",
		},
	}
}

func DefaultSkills() []Skill {
	return []Skill{
		{Name: "React & Next.js", Level: 95},
		{Name: "Three.js & WebGL", Level: 90},
		{Name: "TypeScript", Level: 88},
		{Name: "Tailwind CSS", Level: 92},
		{Name: "Node.js", Level: 85},
		{Name: "Responsive Design", Level: 93},
	}
}
