package content

// englishLabels fills any label a content file leaves empty.
//
//nolint:gochecknoglobals // Label defaults
var englishLabels = Labels{
	NavAbout:      "About",
	NavProjects:   "Projects",
	NavSkills:     "Skills",
	AboutTitle:    "About Me",
	ProjectsTitle: "Featured Projects",
	SkillsTitle:   "Skills",
	ContactCTA:    "Get in Touch",
	ProjectsCTA:   "View My Projects",
	LiveLink:      "Website",
	SourceLink:    "Source",
	Rights:        "All Rights Reserved.",
	Credits:       "Crafted with Go and templ",
}

func (l Labels) withDefaults() (out Labels) {
	out = l
	fill := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	fill(&out.NavAbout, englishLabels.NavAbout)
	fill(&out.NavProjects, englishLabels.NavProjects)
	fill(&out.NavSkills, englishLabels.NavSkills)
	fill(&out.AboutTitle, englishLabels.AboutTitle)
	fill(&out.ProjectsTitle, englishLabels.ProjectsTitle)
	fill(&out.SkillsTitle, englishLabels.SkillsTitle)
	fill(&out.ContactCTA, englishLabels.ContactCTA)
	fill(&out.ProjectsCTA, englishLabels.ProjectsCTA)
	fill(&out.LiveLink, englishLabels.LiveLink)
	fill(&out.SourceLink, englishLabels.SourceLink)
	fill(&out.Rights, englishLabels.Rights)
	fill(&out.Credits, englishLabels.Credits)
	return out
}

// Default returns the built-in sample portfolio.
func Default() (model Model) {
	model = Model{
		Lang: "zh-CN",
		Profile: Profile{
			Name:      "王大明",
			Title:     "软件工程师 | 全栈开发爱好者",
			Bio:       "一位对打造优雅且高效能软件充满热情的应届毕业生。擅长使用 React 和 Node.js 构建用户喜爱的应用，并热衷于学习新技术解决挑战。",
			About:     "我是一名刚从北京科技大学信息工程学系毕业的社会新鲜人。在学期间，我专注于网页全栈开发，并通过多个实务项目，从前端的互动设计到后端的数据库与服务器架构，建立了扎实的基础。我享受团队合作，乐于将困难的问题拆解、分析并找到最佳解决方案。我相信好的软件能为世界带来正向的改变，并期待能加入一个充满活力的团队，贡献所长并持续成长。",
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Daming&backgroundColor=b6e3f4,c0aede,d1d4f9",
		},
		Contact: Contact{
			Email:    "da.ming.wang@email.com",
			GitHub:   "https://github.com/damingwang",
			LinkedIn: "https://linkedin.com/in/damingwang",
		},
		Projects: []Project{
			{
				Title:       "智能电商平台",
				Description: "一个使用 Next.js 和 TypeScript 打造的现代化电商网站，整合了 Stripe 金流和基于用户行为的个性化商品推荐系统。",
				Tags:        []string{"React", "Next.js", "TypeScript", "Stripe", "Vercel", "TailwindCSS"},
				LiveURL:     "#",
				RepoURL:     "#",
				Image:       "https://images.unsplash.com/photo-1522199755839-a2bacb67c546?auto=format&fit=crop&w=800&q=60",
			},
			{
				Title:       "实时聊天应用",
				Description: "基于 WebSocket 的全栈聊天应用，支持多人聊天室和私信功能。后端使用 Express 和 Socket.IO 实现，确保低延迟通讯。",
				Tags:        []string{"Node.js", "Express", "Socket.IO", "React", "WebSocket"},
				LiveURL:     "#",
				RepoURL:     "#",
				Image:       "https://images.unsplash.com/photo-1554629947-334ff61d85dc?auto=format&fit=crop&w=800&q=60",
			},
			{
				Title:       "个人理财仪表板",
				Description: "使用 React 和 Chart.js 打造的个人财务管理工具，通过 Plaid API 安全地连结银行帐户，提供可视化的收支分析。",
				Tags:        []string{"React", "Chart.js", "Plaid API", "Data Viz"},
				LiveURL:     "#",
				RepoURL:     "#",
				Image:       "https://images.unsplash.com/photo-1554224155-6726b3ff858f?auto=format&fit=crop&w=800&q=60",
			},
		},
		Skills: Skills{
			{Name: "编程语言", Skills: []string{"JavaScript (ES6+)", "TypeScript", "Python", "HTML5 & CSS3"}},
			{Name: "前端技术", Skills: []string{"React", "Next.js", "Vue.js", "TailwindCSS", "Redux Toolkit", "Vite"}},
			{Name: "后端技术", Skills: []string{"Node.js", "Express.js", "RESTful API", "GraphQL", "PostgreSQL", "MongoDB"}},
			{Name: "开发工具 & 平台", Skills: []string{"Git & GitHub", "Docker", "Vercel", "AWS (S3, EC2)", "Figma", "Jest"}},
		},
		Labels: Labels{
			NavAbout:      "关于我",
			NavProjects:   "项目",
			NavSkills:     "技能",
			AboutTitle:    "关于我",
			ProjectsTitle: "精选项目",
			SkillsTitle:   "专业技能",
			ContactCTA:    "与我联系",
			ProjectsCTA:   "查看我的项目",
			LiveLink:      "网站",
			SourceLink:    "源码",
			Rights:        "All Rights Reserved.",
			Credits:       "Crafted with Go, templ, and chi",
		},
	}

	model = model.WithDefaults()
	return model
}
