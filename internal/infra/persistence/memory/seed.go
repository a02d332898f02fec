package memory

import (
	"time"

	"lawyerup/internal/domain/entity"
)

// SeedPassword is the plaintext password of every demo account.
const SeedPassword = "password123"

// Seed loads the demo marketplace into the store. passwordHash is applied to
// every seeded account; now anchors the relative timestamps of posts and messages.
func (s *Store) Seed(passwordHash string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := newState()

	lawyers := seedLawyers()
	for _, l := range lawyers {
		l.Role = entity.RoleLawyer
		l.PasswordHash = passwordHash
		st.users.add(l.ID, l, false)
	}

	client := &entity.User{
		ID:            "c1",
		Name:          "John Doe",
		Email:         "john.doe@example.com",
		Phone:         "1234567890",
		DOB:           "1992-08-25",
		CitizenID:     "CID98765",
		PasswordHash:  passwordHash,
		ProfilePicURL: entity.DefaultProfilePicURL("John Doe"),
		Role:          entity.RoleClient,
		Client: &entity.ClientProfile{
			Username: "john_doe",
			CurrentCase: &entity.CaseTemplate{
				CaseType:    "Cyber Law",
				Description: "My company's proprietary source code was stolen by a former employee who is now working for a competitor. I need to file an injunction and sue for damages for this intellectual property theft.",
				Urgency:     entity.UrgencyHigh,
				Status:      entity.CaseStatusPending,
				Notes:       []string{},
				Files:       []string{},
			},
		},
	}
	st.users.add(client.ID, client, false)

	byID := func(id string) *entity.User {
		u, _ := st.users.get(id)
		return u
	}
	author := func(id string) entity.PostAuthor {
		return entity.AuthorOf(byID(id))
	}

	req := &entity.ClientRequest{
		ID:          "req1",
		Client:      client.Snapshot(),
		Lawyer:      byID("l1").Snapshot(),
		CaseDetails: *client.Client.CurrentCase.Clone(),
		Status:      entity.RequestStatusPending,
	}
	st.requests.add(req.ID, req, false)

	familyCase := &entity.Case{
		ID:       "case1",
		ClientID: "c1",
		LawyerID: "l3",
		CaseTemplate: entity.CaseTemplate{
			CaseType:    "Family Law",
			Description: "Initial consultation regarding child custody arrangements.",
			Urgency:     entity.UrgencyModerate,
			Status:      entity.CaseStatusActive,
			Notes:       []string{"Meeting scheduled for next week.", "Client to provide financial documents."},
			Files:       []string{},
		},
	}
	st.cases.add(familyCase.ID, familyCase, false)

	// chat-req1 is not seeded: it is provisioned when req1 is accepted.
	chat := entity.NewChat("chat1", client.Snapshot(), byID("l3").Snapshot())
	chat.Messages = []entity.ChatMessage{
		{ID: "m1", SenderID: "c1", ReceiverID: "l3", Text: "Hello Priya, thank you for accepting my case.", Timestamp: now.Add(-5 * time.Hour)},
		{ID: "m2", SenderID: "l3", ReceiverID: "c1", Text: "You're welcome, John. I'm here to help. Let's schedule a call to discuss the details.", Timestamp: now.Add(-4 * time.Hour)},
	}
	st.chats.add(chat.ID, chat, false)

	posts := []*entity.Post{
		{
			ID:        "p1",
			Author:    author("l2"),
			Text:      "Just won a landmark case today! A testament to weeks of hard work and dedication from the entire team. Justice prevailed. #CriminalDefense #Victory",
			ImageURL:  "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?q=80&w=2070&auto=format&fit=crop",
			Timestamp: now.Add(-2 * time.Hour),
			Likes:     []string{"l1", "l3", "c1"},
			Comments: []entity.PostComment{
				{ID: "c1-1", Text: "Congratulations, Rohan! Well deserved.", Timestamp: now.Add(-1 * time.Hour), Commenter: author("l1")},
			},
		},
		{
			ID:        "p2",
			Author:    author("l1"),
			Text:      "Attending the Annual Corporate Law Summit 2024. Excited to connect with fellow professionals and discuss the future of M&A.",
			Timestamp: now.Add(-8 * time.Hour),
			Likes:     []string{"l2"},
			Comments:  []entity.PostComment{},
		},
		{
			ID:        "p3",
			Author:    author("l3"),
			Text:      "Published a new article on the importance of mediation in family law disputes. It's crucial to prioritize the well-being of children during difficult times. Link in bio.",
			ImageURL:  "https://images.unsplash.com/photo-1589216532372-1c2a36790039?q=80&w=2070&auto=format&fit=crop",
			Timestamp: now.Add(-24 * time.Hour),
			Likes:     []string{"l1", "l2", "c1"},
			Comments: []entity.PostComment{
				{ID: "c3-1", Text: "Great article, Priya. Very insightful.", Timestamp: now.Add(-22 * time.Hour), Commenter: author("l2")},
				{ID: "c3-2", Text: "This is really helpful, thank you for sharing!", Timestamp: now.Add(-20 * time.Hour), Commenter: author("c1")},
			},
		},
		{
			ID:        "p4",
			Author:    author("l4"),
			Text:      "The landscape of data privacy is evolving rapidly with the advent of AI. It's imperative for businesses to stay ahead of compliance. #DataPrivacy #CyberLaw #AI",
			Timestamp: now.Add(-48 * time.Hour),
			Likes:     []string{"l1", "l5"},
			Comments:  []entity.PostComment{},
		},
	}
	for _, p := range posts {
		st.posts.add(p.ID, p, false)
	}

	s.st = st
}

func seedLawyers() []*entity.User {
	return []*entity.User{
		{
			ID:            "l1",
			Name:          "Anjali Sharma",
			Email:         "anjali.sharma@example.com",
			Phone:         "9876543210",
			DOB:           "1985-05-20",
			CitizenID:     "CIT12345",
			ProfilePicURL: "https://images.unsplash.com/photo-1557862921-37829c790f19?q=80&w=2071&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI123456",
				Gender:          "Female",
				Qualification:   "LL.M. in Corporate Law",
				University:      "National Law School of India University",
				GradYear:        2010,
				Achievements:    []string{"Won the National Moot Court Competition 2009", "Published paper on Corporate Governance"},
				Awards:          []string{"Young Lawyer of the Year 2018"},
				Bio:             "A seasoned corporate lawyer with over a decade of experience in mergers, acquisitions, and corporate restructuring. Known for a meticulous approach and client-centric solutions.",
				DomainStrengths: []string{"Corporate Law", "Mergers & Acquisitions"},
				CasesWon:        85,
				CasesLost:       15,
				Specializations: []string{"Corporate Law", "M&A", "Intellectual Property"},
				ExperienceYears: 12,
				Location:        "Mumbai, India",
				AvgPrice:        5000,
			},
		},
		{
			ID:            "l2",
			Name:          "Rohan Mehta",
			Email:         "rohan.mehta@example.com",
			Phone:         "9988776655",
			DOB:           "1982-11-15",
			CitizenID:     "CIT67890",
			ProfilePicURL: "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?q=80&w=2070&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI789012",
				Gender:          "Male",
				Qualification:   "J.D. with specialization in Criminal Law",
				University:      "Harvard Law School",
				GradYear:        2008,
				Achievements:    []string{"Successfully defended in over 50 high-profile criminal cases", "Guest lecturer at various law schools"},
				Awards:          []string{"Top Criminal Defense Attorney 2020 - Legal Eagle Awards"},
				Bio:             "Aggressive and strategic criminal defense lawyer with a proven track record of securing favorable outcomes for clients. Specializes in complex criminal litigation.",
				DomainStrengths: []string{"Criminal Defense", "Litigation"},
				CasesWon:        120,
				CasesLost:       25,
				Specializations: []string{"Criminal Law", "White-Collar Crime", "Civil Rights"},
				ExperienceYears: 15,
				Location:        "Delhi, India",
				AvgPrice:        8000,
			},
		},
		{
			ID:            "l3",
			Name:          "Priya Singh",
			Email:         "priya.singh@example.com",
			Phone:         "9123456789",
			DOB:           "1990-02-10",
			CitizenID:     "CIT54321",
			ProfilePicURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=1887&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI345678",
				Gender:          "Female",
				Qualification:   "LL.B.",
				University:      "University of Delhi",
				GradYear:        2015,
				Achievements:    []string{"Pro-bono work for several NGOs", "Specialist in Family Court mediation"},
				Awards:          []string{"Community Service Award 2019"},
				Bio:             "A compassionate and dedicated family law practitioner focusing on divorce, child custody, and domestic violence cases. Believes in resolving disputes amicably through mediation.",
				DomainStrengths: []string{"Family Law", "Mediation"},
				CasesWon:        45,
				CasesLost:       5,
				Specializations: []string{"Family Law", "Divorce Law", "Child Custody"},
				ExperienceYears: 8,
				Location:        "Bangalore, India",
				AvgPrice:        3500,
			},
		},
		{
			ID:            "l4",
			Name:          "Vikram Rathore",
			Email:         "vikram.rathore@example.com",
			Phone:         "8123456789",
			DOB:           "1988-09-01",
			CitizenID:     "CIT98765",
			ProfilePicURL: "https://images.unsplash.com/photo-1633332755192-727a05c4013d?q=80&w=1780&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI987654",
				Gender:          "Male",
				Qualification:   "M.S. in Cyber Law and Security",
				University:      "Stanford University",
				GradYear:        2013,
				Achievements:    []string{"Keynote speaker at DEF CON 2022", "Consultant for multiple tech unicorns"},
				Awards:          []string{"Cyber Sentinel Award 2021"},
				Bio:             "A leading expert in cyber law, data privacy, and intellectual property in the digital age. Adept at navigating the complex intersection of technology and law.",
				DomainStrengths: []string{"Cyber Law", "Data Privacy"},
				CasesWon:        60,
				CasesLost:       8,
				Specializations: []string{"Cyber Law", "Data Privacy", "Intellectual Property"},
				ExperienceYears: 10,
				Location:        "Hyderabad, India",
				AvgPrice:        6000,
			},
		},
		{
			ID:            "l5",
			Name:          "Aisha Khan",
			Email:         "aisha.khan@example.com",
			Phone:         "7123456789",
			DOB:           "1992-04-12",
			CitizenID:     "CIT11223",
			ProfilePicURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=1961&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI112233",
				Gender:          "Female",
				Qualification:   "LL.M. in Environmental Law",
				University:      "Yale Law School",
				GradYear:        2017,
				Achievements:    []string{"Lead counsel in a major environmental protection PIL", "Works with the UN Environmental Programme"},
				Awards:          []string{"Green Justice Award 2023"},
				Bio:             "Passionate advocate for environmental justice, focusing on climate change litigation, pollution control, and conservation policies. Committed to protecting our planet through legal action.",
				DomainStrengths: []string{"Environmental Law", "Public Interest Litigation"},
				CasesWon:        30,
				CasesLost:       4,
				Specializations: []string{"Environmental Law", "Human Rights", "Public Interest Litigation"},
				ExperienceYears: 6,
				Location:        "Chennai, India",
				AvgPrice:        4000,
			},
		},
		{
			ID:            "l6",
			Name:          "Siddharth Menon",
			Email:         "sid.menon@example.com",
			Phone:         "6123456789",
			DOB:           "1980-07-22",
			CitizenID:     "CIT44556",
			ProfilePicURL: "https://images.unsplash.com/photo-1566753323558-f4e0952af115?q=80&w=1921&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI445566",
				Gender:          "Male",
				Qualification:   "LL.B. with focus on Real Estate Law",
				University:      "Symbiosis Law School",
				GradYear:        2005,
				Achievements:    []string{"Handled property transactions worth over $500 million", "Expert in RERA compliance"},
				Awards:          []string{"Realty Lawyer of the Year 2019"},
				Bio:             "Specializes in all aspects of real estate law, including property transactions, leasing, zoning, and litigation. Provides comprehensive legal support for developers, investors, and homeowners.",
				DomainStrengths: []string{"Real Estate Law", "Property Litigation"},
				CasesWon:        95,
				CasesLost:       10,
				Specializations: []string{"Real Estate Law", "Contract Law", "Litigation"},
				ExperienceYears: 18,
				Location:        "Pune, India",
				AvgPrice:        7500,
			},
		},
		{
			ID:            "l7",
			Name:          "Isabelle Rodriguez",
			Email:         "isabelle.r@example.com",
			Phone:         "5123456789",
			DOB:           "1989-12-30",
			CitizenID:     "CIT77889",
			ProfilePicURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=1964&auto=format&fit=crop",
			Lawyer: &entity.LawyerProfile{
				BarCouncilID:    "BCI778899",
				Gender:          "Female",
				Qualification:   "J.D., International and Immigration Law",
				University:      "New York University School of Law",
				GradYear:        2014,
				Achievements:    []string{"Secured asylum for over 100 clients", "AILA Pro Bono Service Award"},
				Awards:          []string{"Immigration Lawyer of the Year 2022"},
				Bio:             "Dedicated to helping individuals and families navigate the complexities of immigration law. Expertise in visas, green cards, asylum, and deportation defense.",
				DomainStrengths: []string{"Immigration Law", "Asylum Law"},
				CasesWon:        150,
				CasesLost:       20,
				Specializations: []string{"Immigration Law", "Asylum & Refugee Law", "Human Rights"},
				ExperienceYears: 9,
				Location:        "New York, USA",
				AvgPrice:        5500,
			},
		},
	}
}
