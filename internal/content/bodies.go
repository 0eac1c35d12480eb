package content

import "github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"

// categoryBody returns the long-form article body for a category. The prose
// is editorial copy maintained alongside the topic catalog.
func categoryBody(cat catalog.Category, year string) string {
	switch cat {
	case catalog.GettingStarted:
		return gettingStartedBody()
	case catalog.Certifications:
		return certificationsBody()
	case catalog.Salaries:
		return salariesBody(year)
	case catalog.CareerPaths:
		return careerPathsBody()
	case catalog.JobSearch:
		return jobSearchBody()
	case catalog.Skills:
		return skillsBody()
	default:
		return industryTrendsBody(year)
	}
}

func gettingStartedBody() string {
	s := `
            <h2>The Reality Check: What You're Actually Getting Into</h2>

            <p>Before we dive into the how, let's make sure you understand what cybersecurity actually involves day-to-day. When most people think "cybersecurity," they imagine hackers in hoodies typing frantically while green text scrolls across multiple monitors. The reality is much more varied—and honestly, much more accessible than that image suggests.</p>

            <p>Security professionals work across many specializations. Some focus on threat detection and monitoring, watching for signs of malicious activity across networks and systems. Others work in incident response, jumping into action when something goes wrong. Many work in governance and compliance, ensuring organizations follow security regulations. Penetration testers try to find vulnerabilities before attackers do. Cloud security engineers secure the infrastructure that modern businesses run on.</p>

            <p>The good news is you don't need to master all of these to get started. Most people enter through one specific path and expand from there. The question is which path makes sense for your background, interests, and goals.</p>
`
	s += Callout("Important Context", "The 3.5 million unfilled cybersecurity jobs figure isn't marketing hype—it comes from ISC2 research and represents a real supply-demand gap. However, it doesn't mean any warm body can walk into a six-figure job tomorrow. It means there's genuine opportunity for people who put in the work to build real skills.", false)
	s += `
            <h2>The Foundation You Actually Need</h2>

            <p>Here's where a lot of advice goes wrong. People either oversimplify ("just get Security+ and you're good!") or overcomplicate ("you need a CS degree, five years of experience, and twelve certifications"). The truth is more nuanced.</p>

            <h3>Networking Fundamentals Are Non-Negotiable</h3>

            <p>I cannot overstate this: if you don't understand how networks work, you will struggle in almost every security role. Security is fundamentally about protecting systems that communicate over networks. If you don't understand the communication, you can't protect it.</p>

            <p>What does "understand networking" mean practically? You need to be comfortable with IP addressing and subnetting concepts, how DNS resolution works, the difference between TCP and UDP, how HTTP requests and responses function, what happens when you type a URL into a browser, and how firewalls make decisions about traffic.</p>

            <p>The good news: this foundation doesn't take years to build. With focused study, most people develop working networking knowledge in 4-8 weeks. Professor Messer's free Network+ videos are excellent. The Cisco Networking Basics course on Coursera works well too.</p>

            <h3>Operating System Knowledge Matters</h3>

            <p>Security professionals work with both Windows and Linux systems daily. You don't need to be a system administrator, but you need comfortable proficiency with both operating systems.</p>

            <p>For Windows, understand Active Directory basics, where to find and read Windows event logs, PowerShell fundamentals, and common Windows security features like Defender and firewall settings.</p>

            <p>For Linux, you should navigate the file system from command line, understand file permissions, work with utilities like grep and find, understand basic process management, and read log files in /var/log.</p>

            <h3>Security Concepts Build on the Foundation</h3>

            <p>Once you have networking and OS basics, security concepts actually make sense. This is where you learn about authentication mechanisms, encryption types, the principle of least privilege, defense in depth, common attack vectors like phishing and malware, basics of threat modeling, and fundamental security controls.</p>

            <p>This is where certifications like CompTIA Security+ become valuable—not because the certification itself is magic, but because studying for it gives you structured exposure to the breadth of security concepts you'll encounter on the job.</p>
`
	s += DataCards([]DataCard{
		{"Networking Foundation", "4-8 weeks focused study", "TCP/IP, DNS, HTTP, firewalls, packet flow"},
		{"OS Proficiency", "4-6 weeks practice", "Windows + Linux CLI, logs, permissions"},
		{"Security Concepts", "6-10 weeks study", "Authentication, encryption, threats, controls"},
		{"Hands-On Practice", "Ongoing commitment", "Labs, CTFs, projects—never stops"},
	})
	s += `
            <h2>The Certification Question</h2>

            <p>Security+ is worth it for most people trying to break in, but not for the reasons you might think. The certification itself proves you can pass a test—it doesn't prove you can do the job.</p>

            <p>However, it does three important things. First, it clears HR filters. Many organizations use Security+ as a checkbox requirement. Without it, your resume may never reach a human reviewer. Second, the study process is valuable—it exposes you to concepts you might not encounter otherwise. Third, it demonstrates commitment when you're competing against other candidates who also lack professional experience.</p>

            <p>The cost is roughly $400 for the exam, plus study materials. Many people pass using free resources like Professor Messer's videos combined with paid practice exams. Total investment: $500-700 and 2-3 months of focused study.</p>
`
	s += Callout("TalonPrep Study Resource", `For Security+ preparation, <a href="https://tacraven.com/products/talonprep/">TalonPrep</a> provides 800+ practice questions designed specifically for the exam. It works completely offline—useful for studying in disconnected environments or when you want to minimize distractions.`, true)
	s += `
            <h2>Building Hands-On Experience</h2>

            <p>Here's where you separate yourself from everyone else who got Security+ and is mass-applying to entry-level positions. Hands-on experience—even self-directed—transforms you from "another candidate with a certification" to "someone who can contribute from day one."</p>

            <h3>Home Labs Are Your Secret Weapon</h3>

            <p>A home lab doesn't need to be expensive. You can run everything in virtual machines on a reasonably modern laptop. A basic setup includes: Windows VM (evaluation versions are free), Linux VM (Ubuntu or Kali), Wireshark for network analysis, a SIEM like Wazuh (open source), and vulnerable machines from VulnHub to practice on.</p>

            <p>Once running, practice tasks like capturing and analyzing network traffic, setting up security monitoring, detecting simulated attacks, investigating security events, and documenting your findings professionally.</p>

            <h3>Capture the Flag Competitions</h3>

            <p>CTF competitions are games where you solve security challenges to find hidden "flags." They're fun, educational, and give you concrete accomplishments to discuss in interviews. Platforms like TryHackMe and Hack The Box offer structured paths from beginner to advanced.</p>

            <p>The key is documentation. Keep notes on every challenge: what was the vulnerability, how did you find it, what's the remediation? This documentation becomes portfolio material.</p>

            <h3>Open Source Contributions</h3>

            <p>Contributing to open-source security projects demonstrates both technical skills and collaboration ability. You don't need to write complex code—documentation improvements, bug reports, and testing contributions are all valuable. Look for "good first issue" tags on GitHub in security-related repositories.</p>

            <h2>The Job Search Reality</h2>

            <p>Entry-level security roles are competitive. Expect to submit 50-100+ applications before landing your first role. This isn't because you're unqualified—it's because ATS systems filter aggressively, hiring managers have limited review time, and many jobs receive hundreds of applications.</p>

            <h3>The 60% Rule</h3>

            <p>If you meet 60% of a job posting's requirements, apply anyway. Job postings are wish lists, not hard requirements. A posting asking for "3-5 years of security experience" might hire someone with 1 year plus strong fundamentals.</p>

            <h3>Networking Accelerates Everything</h3>

            <p>Applications through online portals have the lowest success rate. Referrals and connections dramatically improve your odds. This doesn't mean you need to know a CISO—even a junior connection at a company can help your resume get seen.</p>
`
	s += ListCards([]ListCard{
		{"LinkedIn Strategy", "Complete profile with security keywords. Share learning journey. Engage meaningfully with posts."},
		{"Local Meetups", "ISSA chapters, OWASP meetings, BSides conferences. Show up consistently."},
		{"Online Communities", "Discord servers, Reddit subs, Twitter/X security community. Be helpful."},
		{"Informational Interviews", "Ask professionals for 15-minute calls. Come with specific questions."},
	})
	s += `
            <h2>Targeting the Right Entry Points</h2>

            <p>Not all "entry-level" security roles are equally accessible. Understanding which positions are realistic for career changers helps you focus your efforts.</p>

            <h3>SOC Analyst (Tier 1)</h3>

            <p>Security Operations Center Analyst roles are the most common entry point. These positions involve monitoring security alerts, performing initial triage on potential incidents, escalating issues requiring deeper investigation, and documenting security events. The work can be repetitive—many alerts are false positives—but it's excellent training.</p>

            <h3>IT Support with Security Responsibilities</h3>

            <p>Many small businesses rely on IT generalists handling security alongside other responsibilities. These hybrid roles offer broad exposure and often faster advancement since you're a big fish in a small pond.</p>

            <h3>GRC Analyst</h3>

            <p>If you have compliance, audit, or regulatory background, Governance/Risk/Compliance roles may be accessible without deep technical skills. These positions focus on security policies, compliance programs, risk assessment, and vendor reviews.</p>
`
	s += DataCards([]DataCard{
		{"SOC Analyst (Tier 1)", "$50K-$75K", "Monitor alerts, triage incidents, escalate threats"},
		{"IT + Security Hybrid", "$45K-$65K", "Smaller orgs, broader responsibilities"},
		{"GRC Analyst", "$55K-$80K", "Compliance, policies, risk assessment"},
		{"Security Coordinator", "$50K-$70K", "Assist security team with projects"},
	})
	s += `
            <h2>The Timeline Question</h2>

            <p>How long will this actually take? It depends on your starting point.</p>

            <p><strong>From IT support/help desk:</strong> 3-6 months of focused effort. You already have foundational knowledge. Focus on Security+ certification, building hands-on skills, and positioning existing experience toward security.</p>

            <p><strong>From non-technical career:</strong> 6-12 months of focused effort. You need to build the technical foundation first, then add security-specific knowledge.</p>

            <p><strong>Recent graduate (non-CS):</strong> 4-8 months of focused effort. You have time flexibility and recent study skills—use these advantages.</p>

            <p>These timelines assume 10-20 hours per week outside your current job.</p>

            <h2>Common Mistakes That Delay Success</h2>

            <h3>Certification Collecting Without Practice</h3>

            <p>Getting Security+ is useful. Getting Security+, Network+, A+, CySA+, and three vendor certifications without ever touching a real security tool is counterproductive. At some point, stop studying and start doing.</p>

            <h3>Waiting for Perfect Readiness</h3>

            <p>You will never feel completely ready. At some point, start applying even if you don't feel 100% prepared. The worst case is you interview, don't get the job, and learn what to work on.</p>

            <h3>Applying Without Tailoring</h3>

            <p>Mass-applying with a generic resume produces generic results. Taking 20 minutes to tailor each application—mirroring keywords from the posting, highlighting relevant projects—dramatically improves your response rate.</p>

            <h3>Undervaluing Non-Security Experience</h3>

            <p>Your previous career gave you transferable skills. Customer service teaches communication. Project management teaches organization. Frame your background as an asset, not a deficit.</p>
`
	return s
}

func certificationsBody() string {
	s := `
            <h2>The Certification Landscape: Cutting Through the Noise</h2>

            <p>The cybersecurity certification market has exploded. There are now dozens of certifications from multiple vendors, each claiming to be essential for your career. But the truth is nuanced—some certifications genuinely accelerate careers, others are expensive resume decorations, and knowing the difference saves you thousands of dollars and months of study time.</p>

            <h2>Entry-Level Certifications</h2>

            <h3>CompTIA Security+ — The Industry Standard</h3>

            <p>Security+ has become the entry-level certification most employers recognize and many require. It's particularly important for government contractors or DoD 8570 compliance positions, where Security+ meets IAT Level II requirements.</p>

            <p>The certification covers threats and vulnerabilities (24%), architecture and design (21%), implementation (25%), operations and incident response (16%), and governance and compliance (14%). This breadth is its greatest value—studying forces you to encounter the full landscape of security concepts.</p>

            <p><strong>Cost:</strong> $404 exam fee. Total investment including materials: $500-800.</p>
            <p><strong>Study time:</strong> 6-12 weeks at 10-15 hours per week with some IT background.</p>
            <p><strong>Validity:</strong> Three years, renewable through continuing education or higher certification.</p>
`
	s += Callout("Study Resource", `For Security+ preparation, <a href="https://tacraven.com/products/talonprep/">TalonPrep</a> provides 800+ practice questions designed for the exam. It works completely offline—useful for focused study sessions.`, true)
	s += `
            <h3>Google Cybersecurity Professional Certificate</h3>

            <p>Google's certificate is a lower-cost alternative designed for career changers. The 6-month program costs roughly $300 through Coursera and covers security fundamentals, network security, Linux and SQL basics, detection and response, and Python automation.</p>

            <p>The content is solid with hands-on labs providing practical experience. However, it doesn't have the universal recognition of Security+, particularly in government and traditional enterprise environments. Best suited for people targeting tech companies or startups, or those on tight budgets.</p>

            <h3>ISC2 Certified in Cybersecurity (CC)</h3>

            <p>ISC2 launched this entry-level certification with one notable feature: it's free. The exam and first year of membership cost nothing, making it the lowest-risk entry point available. It's less comprehensive than Security+ but provides a legitimate credential at zero cost. The catch is that employer recognition is still developing since it's newer.</p>

            <h2>Mid-Level Certifications</h2>

            <h3>CompTIA CySA+ — Blue Team Focus</h3>

            <p>CySA+ targets security analysts and SOC professionals, focusing on threat detection, security monitoring, incident response, and vulnerability management. This makes sense after 6-12 months working in a security role. The content is more practical than Security+, covering SIEM analysis, threat intelligence, behavioral analytics, and incident handling procedures.</p>

            <h3>CompTIA PenTest+ — Offensive Security Entry</h3>

            <p>If you're interested in penetration testing, PenTest+ provides intermediate coverage of offensive techniques. It's respected for demonstrating offensive security interest, but it's not sufficient alone for most pentesting positions. Employers typically want practical skills demonstrated through CTF achievements, bug bounties, or OSCP certification.</p>

            <h3>OSCP — The Pentesting Gold Standard</h3>

            <p>The Offensive Security Certified Professional is the most respected penetration testing certification. Unlike most certifications, OSCP requires you to actually hack—the exam is a 24-hour practical assessment where you must compromise multiple machines and write a professional report.</p>

            <p>This is not entry-level. Most successful candidates have 1-2 years of security experience or extensive CTF practice. The course is challenging and the fail rate is substantial.</p>
`
	s += DataCards([]DataCard{
		{"Security+", "$404 exam", "Entry-level standard. Required for government roles."},
		{"CySA+", "$392 exam", "Blue team focus. Best after 6-12 months experience."},
		{"PenTest+", "$392 exam", "Offensive basics. Stepping stone, not destination."},
		{"OSCP", "$1,599+ total", "Pentesting gold standard. 24-hour hands-on exam."},
	})
	s += `
            <h2>Senior-Level Certifications</h2>

            <h3>CISSP — The Management Standard</h3>

            <p>CISSP is the most recognized senior security certification globally, covering eight domains from risk management to software development security.</p>

            <p>Important: CISSP is not a technical certification. It's a management and strategy certification testing whether you can think like a security leader balancing risk, business needs, and security requirements.</p>

            <p><strong>When to pursue:</strong> After 5+ years of security experience, when moving toward management or architecture roles, when targeting positions that require it.</p>

            <p><strong>When NOT to pursue:</strong> Early in your career (you won't pass and can't use the credential without experience), if you want to stay deeply technical.</p>

            <h3>Cloud Security Certifications</h3>

            <p>Cloud security has become critical enough that dedicated certifications carry significant weight: AWS Certified Security - Specialty, Microsoft Azure Security Engineer (AZ-500), and Google Cloud Professional Cloud Security Engineer.</p>

            <p>Combining Security+ (foundational) + cloud security certification (specialized) is a strong combination for mid-level cloud security positions.</p>

            <h2>The Certification Strategy: Avoiding Mistakes</h2>

            <h3>Mistake 1: Over-Certification</h3>

            <p>I've seen resumes with 10+ certifications from people who struggle in interviews because they lack practical experience. A reasonable progression: one entry-level cert (Security+ or equivalent), one specialty cert aligned to your role, and eventually a senior cert when appropriate (CISSP for management track, OSCP for offensive track).</p>

            <h3>Mistake 2: Wrong Certification for Your Goals</h3>

            <p>Don't pursue OSCP if you want to work in GRC. Don't pursue CISSP if you want to stay hands-on technical. Match certification investments to your actual career goals.</p>

            <h3>Mistake 3: Certification Without Context</h3>

            <p>A certification proves you can pass a test—that's the floor, not the ceiling. The most successful professionals use certification study as a framework for deeper learning: building labs, working on projects, developing skills beyond exam objectives.</p>

            <h2>Study Strategies That Work</h2>

            <h3>The Multi-Source Approach</h3>

            <p>Relying on a single study resource is risky. Different sources explain concepts differently. A typical effective combination: video course for initial exposure, textbook for depth, practice exams for test readiness, and hands-on labs for practical understanding.</p>

            <h3>Practice Exams Are Essential</h3>

            <p>Practice exams reveal knowledge gaps and build test-taking endurance for 2-3 hour exams. Quality matters more than quantity. Target: consistently scoring 80%+ on quality practice exams before scheduling your real exam.</p>
`
	s += ListCards([]ListCard{
		{"Video Courses", "Professor Messer (free), Pluralsight, LinkedIn Learning. Good for initial exposure."},
		{"Study Guides", "Official CompTIA books, Sybex, Exam Cram. Read for depth."},
		{"Practice Exams", "TalonPrep, Kaplan IT, Boson. Essential for test readiness."},
		{"Hands-On Labs", "TryHackMe, Hack The Box, home lab. Cements understanding."},
	})
	s += `
            <h2>How Employers View Certifications</h2>

            <p>Certifications get you past automated filters and HR screening. They signal baseline competence to non-technical recruiters. But once your resume reaches a technical hiring manager, certifications become less important than demonstrated ability.</p>

            <p>The ideal combination for entry-level: Security+ (clears filters) + documented hands-on projects (demonstrates ability) + good communication (interviews well). Each element serves a different purpose in the hiring process.</p>
`
	return s
}

func salariesBody(year string) string {
	s := `
            <h2>Cybersecurity Salaries: Data Over Hype</h2>

            <p>Let's cut through the noise. You've probably seen headlines claiming cybersecurity professionals make $200,000+ or that entry-level analysts start at $100,000. While those numbers exist in certain markets, they don't represent typical compensation—and chasing unrealistic expectations leads to poor career decisions.</p>

            <p>What I'm sharing here is based on multiple data sources: Bureau of Labor Statistics data, industry salary surveys from ISC2 and ISACA, compensation data from Levels.fyi and Glassdoor, and patterns from job postings and hiring discussions.</p>

            <h2>Entry-Level Reality Check (` + year + `)</h2>

            <h3>SOC Analyst (Tier 1) — $50,000 to $75,000</h3>

            <p>This is the most common entry point, and the salary range reflects that accessibility. Many SOC roles include shift differentials for nights/weekends that can add $5,000-10,000 annually. Factor this in when comparing offers.</p>

            <h3>Junior Security Analyst — $55,000 to $80,000</h3>

            <p>Slightly higher than Tier 1 SOC because these roles typically require more independent work. You might be doing vulnerability assessments, assisting with audits, or handling security awareness programs.</p>

            <h3>GRC Analyst (Entry Level) — $55,000 to $75,000</h3>

            <p>GRC roles tend to pay slightly more at entry level because they often require specific regulatory knowledge that limits the candidate pool.</p>
`
	s += DataCards([]DataCard{
		{"SOC Analyst T1", "$50K-$75K", "Alert monitoring, triage, documentation"},
		{"Junior Security Analyst", "$55K-$80K", "Broader scope, more independence"},
		{"IT + Security Hybrid", "$45K-$65K", "Smaller orgs, broader exposure"},
		{"Entry GRC Analyst", "$55K-$75K", "Compliance focus, writing-intensive"},
	})
	s += `
            <h2>Mid-Level Compensation (2-5 Years)</h2>

            <p>This is where compensation starts to differentiate significantly based on specialization, location, and industry.</p>

            <h3>Security Analyst / SOC Analyst (Tier 2-3) — $75,000 to $110,000</h3>

            <p>Experienced analysts handling complex investigations, mentoring junior staff, and working independently command significant premiums over entry-level.</p>

            <h3>Security Engineer — $90,000 to $140,000</h3>

            <p>Engineering roles pay more because they require deeper technical skills. You're building and maintaining security infrastructure—firewalls, SIEM deployments, identity systems, cloud security configurations.</p>

            <h3>Cloud Security Engineer — $100,000 to $150,000</h3>

            <p>Cloud security is one of the highest-demand specializations. The combination of cloud expertise and security knowledge is relatively rare, driving premiums even at mid-level.</p>
`
	s += DataCards([]DataCard{
		{"Senior SOC Analyst", "$75K-$110K", "Complex investigations, mentoring"},
		{"Security Engineer", "$90K-$140K", "Infrastructure, tools, automation"},
		{"Penetration Tester", "$85K-$130K", "Offensive testing, consulting premium"},
		{"Cloud Security Eng", "$100K-$150K", "High demand specialty"},
	})
	s += `
            <h2>Senior-Level and Leadership (5+ Years)</h2>

            <p>At senior levels, compensation becomes highly variable based on company size, industry, and individual negotiation.</p>

            <h3>Senior Security Engineer / Architect — $140,000 to $200,000</h3>

            <p>Technical leadership roles designing security systems and setting standards. The top end is at FAANG-level companies or in extremely high cost-of-living markets.</p>

            <h3>Director of Security — $150,000 to $250,000</h3>

            <p>Overseeing entire security functions or major programs. At larger organizations, directors often have VPs above them; at smaller ones, directors might report directly to the CTO or CEO.</p>

            <h3>CISO — $200,000 to $500,000+</h3>

            <p>Chief Information Security Officer compensation varies enormously based on organization size, industry, and regulatory environment. A CISO at a small company might make $180,000; a CISO at a Fortune 500 financial institution might make $400,000+ plus significant equity.</p>

            <h2>What Drives Salary Variation</h2>

            <h3>Location — The Biggest Factor</h3>

            <p>Geography creates the largest compensation differences. The same role can pay $80,000 in Dallas and $130,000 in San Francisco. Remote work has complicated this picture. Some companies pay location-adjusted salaries; others pay based on company headquarters regardless of where you work. Clarify this when evaluating remote offers.</p>

            <h3>Industry — Surprising Variation</h3>

            <p><strong>Highest paying:</strong> Financial services (especially investment banking), Big Tech, Defense contractors for cleared positions.</p>

            <p><strong>Mid-range:</strong> Healthcare, Retail, Manufacturing, Government contractors.</p>

            <p><strong>Lower range:</strong> Education, Non-profits, Small businesses, State/local government.</p>

            <h3>Specialization Premium</h3>

            <p>Certain specializations command premiums because demand outpaces supply: cloud security (AWS/Azure/GCP), application security / DevSecOps, AI/ML security (emerging), OT/ICS security, and incident response leadership. These premiums shift over time as supply catches up to demand.</p>

            <h2>Negotiation: Skills Worth Thousands</h2>

            <p>Most job offers have 10-15% negotiation room. On a $70,000 offer, that's $7,000-10,500—real money for a 30-minute conversation.</p>

            <h3>Research Market Rates First</h3>

            <p>Before any negotiation, know the market. Use Levels.fyi for tech companies, Glassdoor for broad coverage, LinkedIn Salary Insights, and industry salary surveys. Having data lets you say "Based on market research, roles like this typically pay $X-Y" rather than just "I want more."</p>

            <h3>Know Your Leverage</h3>

            <p>Your leverage is highest with competing offers, specialized skills, or when the company has urgent hiring needs. Even with low leverage, negotiating is worth attempting. The worst case is typically "no, the offer is firm"—not a rescinded offer.</p>
`
	s += Callout("The Raise Reality", "Annual raises at most companies are 3-5%. Market movement during job changes is typically 10-20%. The math is clear: staying too long at one company has a real financial cost. Strategic job changes every 2-3 years typically produce higher lifetime earnings than loyalty to one employer.", false)
	s += `
            <h2>Salary Progression: What to Expect</h2>

            <p><strong>Year 1:</strong> Entry-level, $55,000-70,000. Focus on learning, not maximizing compensation.</p>

            <p><strong>Years 2-3:</strong> First promotion or job change, $70,000-90,000. This is often the biggest percentage jump—20-30% increases are common when moving from entry to mid-level.</p>

            <p><strong>Years 4-5:</strong> Senior individual contributor, $90,000-120,000. Growth rate slows but remains healthy.</p>

            <p><strong>Years 6-10:</strong> Senior IC or management track, $120,000-180,000. Specialization and leadership determine where you land.</p>

            <p><strong>Year 10+:</strong> Principal/staff engineer or director+, $180,000+. The ceiling depends on ambitions, abilities, and target organizations.</p>
`
	return s
}

func careerPathsBody() string {
	s := `
            <h2>Understanding the Security Career Landscape</h2>

            <p>Cybersecurity isn't one career path—it's an entire ecosystem of specialized roles that interact and overlap. The field broadly divides into: defensive security (blue team), offensive security (red team), governance and compliance (GRC), security engineering and architecture, and leadership and management.</p>

            <h2>Defensive Security Careers (Blue Team)</h2>

            <p>Blue team roles focus on protecting organizations from threats. This is where most security careers start and represents the largest employment segment.</p>

            <h3>Security Operations Center (SOC) Analyst</h3>

            <p><strong>What you do:</strong> Monitor security alerts from various tools, investigate potential incidents, escalate confirmed threats, and document everything.</p>

            <p><strong>Day-to-day reality:</strong> A lot of alert triage. Most alerts are false positives, and your job is quickly identifying them while not missing real threats. It can be repetitive but builds essential pattern-recognition skills.</p>

            <p><strong>Progression:</strong> SOC Analyst (T1) → Senior SOC Analyst (T2) → SOC Lead (T3) → SOC Manager → Security Operations Director.</p>

            <h3>Incident Responder</h3>

            <p><strong>What you do:</strong> Respond to confirmed security incidents, contain active threats, perform forensic analysis, coordinate remediation, and write incident reports.</p>

            <p><strong>Day-to-day reality:</strong> More intense than SOC work. You might have weeks of routine work, then 48-hour sprints during active incidents. Stress tolerance is essential.</p>

            <h3>Threat Intelligence Analyst</h3>

            <p><strong>What you do:</strong> Research threat actors and their tactics, analyze malware and attack campaigns, produce intelligence reports, and connect external threat data to internal security posture.</p>

            <p><strong>Day-to-day reality:</strong> More analytical and research-oriented than operational roles. Strong writing and communication skills are essential—your value comes from making intelligence actionable.</p>
`
	s += DataCards([]DataCard{
		{"SOC Analyst", "$50K-$110K (T1-T3)", "Alert monitoring, triage, investigation"},
		{"Incident Responder", "$70K-$140K", "Handle confirmed incidents, high stress tolerance"},
		{"Threat Intel Analyst", "$75K-$130K", "Research and analysis, strong writing required"},
		{"Detection Engineer", "$90K-$150K", "Build detection rules, coding valuable"},
	})
	s += `
            <h2>Offensive Security Careers (Red Team)</h2>

            <p>Red team roles focus on finding vulnerabilities before malicious actors do. These positions are harder to break into and represent a smaller slice of overall security employment.</p>

            <h3>Penetration Tester</h3>

            <p><strong>What you do:</strong> Conduct authorized attacks to find vulnerabilities, document findings with remediation recommendations, and present results to stakeholders.</p>

            <p><strong>Day-to-day reality:</strong> Less dramatic than movies suggest. Significant time goes into scoping engagements, running automated scans, documentation, and writing reports. The actual "hacking" is maybe 30-40% of the job.</p>

            <p><strong>Entry barriers:</strong> Higher than defensive roles. Employers want demonstrated skills through CTF achievements, bug bounties, OSCP certification, or previous security experience.</p>

            <h3>Red Team Operator</h3>

            <p><strong>How it differs from pentesting:</strong> Pentesters find vulnerabilities. Red teamers simulate realistic attacks to test organizational response. Red team work is typically longer engagements with more sophisticated techniques. Most positions require years of offensive security experience and strong tool development skills.</p>

            <h3>Bug Bounty Hunter</h3>

            <p><strong>Reality check:</strong> Bug bounty is not a sustainable career path for most people—it's a supplementary income stream or training ground. Full-time bug bounty hunting is viable only for roughly the top 1% of researchers. Even modest success demonstrates practical offensive skills to employers.</p>

            <h2>Governance, Risk, and Compliance (GRC)</h2>

            <p>GRC roles focus on the business side of security—policies, compliance, risk management, and audit. These positions are less technical and often appeal to people with backgrounds in audit, compliance, or business analysis.</p>

            <h3>GRC Analyst</h3>

            <p><strong>What you do:</strong> Maintain security policies and procedures, manage compliance programs (SOC 2, PCI-DSS, HIPAA, GDPR), conduct risk assessments, perform vendor security reviews, and support audit processes.</p>

            <p><strong>Day-to-day reality:</strong> Documentation-heavy work. You're writing policies, reviewing evidence, completing security questionnaires, and preparing for audits. If you hate documentation, this is not your path.</p>
`
	s += ListCards([]ListCard{
		{"Security Engineer", "Build and maintain security infrastructure. Strong troubleshooting skills."},
		{"Cloud Security Engineer", "AWS/Azure/GCP security. High demand, premium pay."},
		{"Security Architect", "Senior role designing security solutions. 7-10+ years typical."},
		{"AppSec Engineer", "Code review, secure development. Programming background essential."},
	})
	s += `
            <h2>Security Engineering and Architecture</h2>

            <p>Engineering and architecture roles focus on building and maintaining secure systems. These positions require deeper technical skills and pay accordingly.</p>

            <h3>Security Engineer</h3>

            <p><strong>What you do:</strong> Implement and maintain security tools (firewalls, SIEM, EDR, IAM systems), automate security processes, troubleshoot security infrastructure, and work with other engineering teams on secure design.</p>

            <h3>Cloud Security Engineer</h3>

            <p><strong>Why it pays premium:</strong> Organizations desperately need people who understand both cloud platforms and security. This combination is relatively rare.</p>

            <h3>Application Security Engineer</h3>

            <p><strong>Skills required:</strong> Programming knowledge is essential—you need to read and understand code. Security testing tools, secure coding practices, and ability to work constructively with developers.</p>

            <h2>Choosing Your Path</h2>

            <h3>Technical vs. Business Orientation</h3>

            <p>If you enjoy technical problem-solving—configuring systems, writing scripts, analyzing data—engineering and operational roles are your fit. If you prefer documents, policies, and stakeholder communication, GRC roles make more sense.</p>

            <h3>Offense vs. Defense Mindset</h3>

            <p>Some people naturally think about how to break things. Others think about how to protect things. Both perspectives are needed. If you're energized by attack scenarios, offensive security might be your calling—but be realistic about higher entry barriers.</p>

            <h3>Stress Tolerance</h3>

            <p>Incident response and SOC work involve periodic high-stress situations. GRC and architecture work is generally steadier. Know yourself: do you perform well under pressure or does it wear you down?</p>

            <h3>Starting Point</h3>

            <p>Your background matters. From IT support? SOC and security engineering are natural transitions. From audit or compliance? GRC is more accessible. From development? Application security makes sense. Play to existing strengths while building new ones.</p>
`
	return s
}

func jobSearchBody() string {
	s := `
            <h2>The Reality of Security Hiring</h2>

            <p>Before we get into tactics, let's understand what actually happens when you apply for security jobs. Understanding this process helps you navigate it effectively.</p>

            <h3>The Hiring Funnel</h3>

            <p>A typical security job posting at a desirable company receives 100-300 applications. Here's what happens:</p>

            <p><strong>Stage 1 - ATS Filtering:</strong> Applicant Tracking Systems automatically filter applications based on keyword matching. If your resume doesn't contain the right terms, it may never reach a human reviewer. This eliminates 40-60% of applications.</p>

            <p><strong>Stage 2 - Recruiter Screening:</strong> A recruiter spends 10-30 seconds scanning each remaining resume looking for obvious qualification matches. Another 30-40% are eliminated here.</p>

            <p><strong>Stage 3 - Hiring Manager Review:</strong> The hiring manager reviews the shortlist—typically 10-20 candidates for one position. 5-10 candidates get phone screens.</p>

            <p><strong>Stage 4 - Interviews:</strong> After phone screens and technical interviews, 2-4 candidates reach final rounds. One gets an offer.</p>

            <h2>Resume Optimization</h2>

            <h3>Beat the ATS</h3>

            <p>ATS systems scan for keywords matching the job description. This isn't about gaming the system—it's about ensuring your legitimate qualifications are recognized.</p>

            <p>Mirror key terms from the job posting into your resume where they legitimately apply. Use standard section headings: Experience, Education, Skills, Certifications. Avoid graphics, tables, and complex columns. Include a dedicated skills section listing relevant technologies explicitly.</p>

            <h3>Speak to the Hiring Manager</h3>

            <p><strong>Quantify accomplishments:</strong> "Monitored security alerts" is weak. "Triaged 200+ daily alerts with 15-minute average response time" is specific and impressive.</p>

            <p><strong>Highlight relevant projects:</strong> Home lab work, CTF completions, certifications, open source contributions—anything demonstrating security capability.</p>
`
	s += Callout("Resume Length", "For entry-level positions, one page is usually sufficient. For experienced professionals (5+ years), two pages is acceptable. More than two pages is almost never appropriate unless you're at executive level.", false)
	s += `
            <h3>The "No Experience" Challenge</h3>

            <p>If you're breaking in with no professional security experience, demonstrate capability through other means:</p>

            <p><strong>Lab work:</strong> "Built home lab with Wazuh SIEM and multiple endpoints to simulate SOC environment. Practiced alert triage, log analysis, and incident documentation."</p>

            <p><strong>CTF achievements:</strong> "Completed TryHackMe 'SOC Level 1' learning path. Documented walkthroughs for 15 challenges on personal blog."</p>

            <p><strong>Transferable experience reframed:</strong> Connect previous skills explicitly to security. "Managed IT ticket queue of 50+ daily requests, developing triage skills applicable to SOC alert management."</p>

            <h2>The Job Search Process</h2>

            <h3>Application Volume and Strategy</h3>

            <p>Entry-level security roles are competitive. Expect to submit 50-100+ applications before landing your first role. Quality over pure volume matters. 50 tailored applications outperform 200 identical applications.</p>

            <h3>The 60% Rule</h3>

            <p>If you meet 60% of a job posting's requirements, apply anyway. Job postings are wish lists, not hard requirements. A posting asking for "3-5 years of security experience" might hire someone with 1 year plus strong fundamentals.</p>
`
	s += ListCards([]ListCard{
		{"LinkedIn", "Largest volume of professional jobs. Job alerts, recruiter connections help."},
		{"Company Career Pages", "Direct applications sometimes get priority. Check target companies."},
		{"Security Job Boards", "CyberSecJobs, InfoSec Jobs, Dice. More concentrated listings."},
		{"Government Portals", "USAJobs.gov, defense contractors. Different process but stable."},
	})
	s += `
            <h2>Networking: The Accelerator</h2>

            <p>Applications through online portals have the lowest success rate—often 2-5% response rates. Referrals and connections dramatically improve your odds. This doesn't mean you need to know a CISO. Even a junior connection at a company can forward your resume to the hiring manager.</p>

            <h3>Building a Network from Scratch</h3>

            <p><strong>LinkedIn engagement:</strong> Don't just connect—engage with content. Write thoughtful comments, share useful resources. Over time, people recognize your name.</p>

            <p><strong>Local meetups:</strong> ISSA chapters, OWASP meetings, BSides conferences. Show up consistently, talk to people, follow up afterward.</p>

            <p><strong>Informational interviews:</strong> Ask security professionals for 15-20 minute conversations to learn about their path. Most people say yes if you ask respectfully with specific questions prepared.</p>

            <h2>The Interview Process</h2>

            <h3>Phone Screens</h3>

            <p>Initial phone screens verify basic qualifications and communication skills. Be ready to clearly explain your background in 2-3 minutes. Have a concise answer for "why security?" that shows genuine interest.</p>

            <h3>Technical Interviews</h3>

            <p><strong>Concept questions:</strong> "Explain how DNS works." "What happens when you type a URL in a browser?" These test foundational knowledge and ability to explain concepts clearly.</p>

            <p><strong>Scenario questions:</strong> "You see this alert in the SIEM. Walk me through your investigation process." These test your problem-solving approach.</p>

            <h3>Behavioral Interviews</h3>

            <p>Use the STAR method: Situation, Task, Action, Result. Common questions: "Tell me about a time you had to learn something new quickly." "Describe a situation where you disagreed with someone's approach."</p>
`
	s += Callout("Interview Preparation", "Before any interview, research the company's security posture, understand their industry and likely compliance requirements, and prepare 3-5 thoughtful questions to ask. Interviewers remember candidates who showed genuine interest.", false)
	return s
}

func skillsBody() string {
	s := `
            <h2>What Actually Gets You Hired</h2>

            <p>There's a significant gap between what job postings list as requirements and what actually determines hiring decisions. Job postings list every technology the team uses, regardless of whether a new hire needs it immediately.</p>

            <p>What hiring managers actually evaluate: Can this person do the core job functions? Can they learn what they don't know? Will they work well with the team? Do they have the right foundation to build on?</p>

            <h2>The Technical Foundation</h2>

            <h3>Networking Fundamentals (Non-Negotiable)</h3>

            <p>Security is about protecting systems that communicate over networks. If you don't understand how networks work, you can't secure them or investigate what happened when something goes wrong.</p>

            <p>What you need: the OSI and TCP/IP models—not to recite layers in interviews, but to understand where different attacks and defenses operate. How TCP and UDP work. DNS resolution—how it works and why it's a security concern (DNS tunneling, hijacking). HTTP/HTTPS in detail. Subnetting and IP addressing. Common protocols and their security implications—SSH, RDP, SMB, FTP, SMTP.</p>

            <h3>Operating System Knowledge</h3>

            <p><strong>Windows skills:</strong> Active Directory basics, Windows event logs (where to find them, which event IDs matter), PowerShell proficiency, Windows security features.</p>

            <p><strong>Linux skills:</strong> Command line navigation, file permissions, log locations (/var/log), process management, basic bash scripting.</p>
`
	s += DataCards([]DataCard{
		{"Networking", "Foundation for everything", "TCP/IP, DNS, HTTP, protocols, subnetting"},
		{"Windows Admin", "Enterprise standard", "Active Directory, event logs, PowerShell"},
		{"Linux CLI", "Server and security tools", "Command line, permissions, logs, scripting"},
		{"Scripting", "Automation enabler", "Python, PowerShell, Bash"},
	})
	s += `
            <h2>Security-Specific Technical Skills</h2>

            <h3>SIEM Tools (Critical for Analyst Roles)</h3>

            <p>Security Information and Event Management systems are central to defensive security operations. SOC analysts spend most of their time in SIEM tools.</p>

            <p>Query languages—each SIEM has its own. Splunk uses SPL. Microsoft Sentinel uses KQL. Learn at least one deeply enough to write your own queries. Alert tuning—how to reduce false positives by refining detection rules—is one of the most valuable skills.</p>

            <h3>Network Analysis (Wireshark)</h3>

            <p>Wireshark is the standard tool for network traffic analysis. Being able to capture traffic, apply filters, follow conversations, and identify suspicious patterns is valuable across multiple roles.</p>

            <h3>Endpoint Detection and Response (EDR)</h3>

            <p>EDR tools have become essential for security operations. Common platforms: CrowdStrike Falcon, Microsoft Defender for Endpoint, SentinelOne, Carbon Black. Learn one deeply and others become easier.</p>

            <h2>Programming and Scripting</h2>

            <p>You don't need to be a software developer, but scripting ability significantly increases your effectiveness.</p>

            <h3>Python (Most Valuable for Security)</h3>

            <p>Python has become the standard language for security scripting. What you should be able to do: write scripts to automate repetitive tasks, use common libraries, read and understand existing scripts, modify scripts to fit your needs.</p>

            <p><strong>Learning approach:</strong> Don't learn Python abstractly. Pick a task you need to automate and figure out how to do it. Practical projects stick better than tutorials.</p>

            <h3>Bash and PowerShell</h3>

            <p>Bash scripting is essential for Linux environments. PowerShell is essential for Windows. At minimum, read and understand scripts. Ideally, write basic automation scripts—looping through files, conditional logic, calling other commands.</p>

            <h2>Soft Skills That Actually Matter</h2>

            <p>Technical skills get you considered. Soft skills often determine whether you get hired and how far you advance.</p>

            <h3>Communication (The Differentiator)</h3>

            <p>Security professionals communicate constantly: writing incident reports, explaining risks to executives, documenting procedures, presenting findings, convincing developers to fix vulnerabilities.</p>

            <p><strong>How to develop this:</strong> Write things down. Document your home lab projects. Write explanations of security concepts as if teaching someone. The practice of converting knowledge into clear language is the skill itself.</p>

            <h3>Problem-Solving and Analysis</h3>

            <p>Security work is about solving problems with incomplete information. CTF challenges are excellent training. Documenting your thought process—not just the answer—builds systematic analysis skills.</p>

            <h3>Continuous Learning</h3>

            <p>The security field changes constantly. What employers want when they say "continuous learning" is evidence you can keep up. How do you stay current? Do you read security news? Follow researchers? Experiment with new tools?</p>
`
	s += ListCards([]ListCard{
		{"Written Communication", "Reports, documentation, emails. Clear writing is rare and valuable."},
		{"Verbal Communication", "Explaining technical concepts to non-technical audiences."},
		{"Analytical Thinking", "Systematic problem-solving with incomplete data."},
		{"Continuous Learning", "Sustainable habits for staying current."},
	})
	s += `
            <h2>Prioritizing Your Learning</h2>

            <h3>Phase 1: Foundations (Weeks 1-8)</h3>

            <p>Focus on networking fundamentals first. Complete a Network+ level study program. Simultaneously, set up VMs for Windows and Linux and practice command-line basics daily.</p>

            <h3>Phase 2: Security Concepts (Weeks 6-14)</h3>

            <p>Start Security+ study while continuing OS skills practice. Build a basic home lab and start doing simple exercises.</p>

            <h3>Phase 3: Hands-On Tools (Weeks 10-20)</h3>

            <p>Once you have conceptual foundation, start learning specific tools. Set up a SIEM, practice with Wireshark, run vulnerability scans, work through TryHackMe rooms.</p>

            <h3>Phase 4: Specialization (Ongoing)</h3>

            <p>As you get closer to job-ready, focus on skills specific to your target role. SOC roles need deeper SIEM skills. Engineering roles need more scripting. GRC roles need compliance framework knowledge.</p>
`
	s += Callout("TalonPrep Resource", `For Security+ preparation, <a href="https://tacraven.com/products/talonprep/">TalonPrep</a> offers 800+ practice questions that work completely offline. Useful for focused study without internet distractions.`, true)
	return s
}

func industryTrendsBody(year string) string {
	s := `
            <h2>The Current State of Cybersecurity Employment</h2>

            <p>The cybersecurity job market in ` + year + ` continues to defy broader tech industry trends. While other technology sectors have experienced layoffs and increased competition, security has remained remarkably resilient. Understanding why helps you position yourself effectively.</p>

            <h2>The Numbers: Supply and Demand</h2>

            <h3>The Workforce Gap</h3>

            <p>The oft-cited "3.5 million unfilled cybersecurity jobs" figure comes from ISC2's annual workforce study. In the United States specifically, estimates suggest 500,000-750,000 unfilled positions.</p>

            <p>What this means for job seekers: there's genuine opportunity, but not unlimited opportunity. Companies still have standards. The shortage means qualified candidates have leverage that workers in oversupplied fields don't have.</p>

            <h3>Job Growth Projections</h3>

            <p>The Bureau of Labor Statistics projects 33% growth for Information Security Analysts from 2023-2033—far exceeding the average for all occupations. This is based on expansion of cloud computing, increasing sophistication of cyber attacks, and regulatory requirements creating compliance-driven hiring.</p>
`
	s += DataCards([]DataCard{
		{"Job Growth", "33% projected", "2023-2033 BLS projection. Far above average."},
		{"Unfilled Roles", "750K+ in US", "Open positions organizations are trying to fill."},
		{"Median Salary", "$120K+", "Information Security Analysts."},
		{"Unemployment", "Near 0%", "Effectively zero for qualified professionals."},
	})
	s += `
            <h2>What's Driving Demand</h2>

            <h3>Cloud Adoption Creates Security Needs</h3>

            <p>Organizations have migrated rapidly to cloud infrastructure—AWS, Azure, GCP—often faster than their security capabilities. Cloud security isn't a niche anymore. It's becoming core competency expected of security professionals at all levels.</p>

            <h3>Regulatory Pressure Keeps Increasing</h3>

            <p>New regulations and stricter enforcement create compliance-driven hiring. GDPR enforcement continues in Europe. SEC rules now require public companies to disclose material cybersecurity incidents. Industry-specific regulations (HIPAA, PCI-DSS, CMMC) all require dedicated security resources.</p>

            <h3>Remote Work Expanded Attack Surface</h3>

            <p>The shift to remote and hybrid work fundamentally changed security requirements. Organizations now need zero trust architectures, endpoint security that works anywhere, identity-centric security models, and monitoring that covers distributed workforces. This is permanent change, not temporary.</p>

            <h3>Threats Keep Evolving</h3>

            <p>Cyber attacks aren't slowing down. Ransomware remains a major threat. Nation-state actors target critical infrastructure. Supply chain attacks compromise organizations through their vendors. As long as valuable data exists and systems can be exploited, there's a need for people to defend them.</p>

            <h2>AI's Impact on Security Careers</h2>

            <h3>What AI Is Actually Doing</h3>

            <p>AI and machine learning are being applied to: anomaly detection, alert correlation, automated triage, threat intelligence, and code analysis. These applications are real and improving. But they're augmenting human analysts, not replacing them.</p>

            <h3>Why AI Isn't Replacing Analysts</h3>

            <p>Security analysis requires judgment that current AI can't replicate reliably. When AI flags something suspicious, humans still need to determine if it's actually malicious, understand business context, and decide on response. The realistic near-term future: AI handles more initial filtering and pattern recognition, freeing human analysts to focus on complex investigations and decision-making.</p>

            <h3>Skills That Remain Valuable</h3>

            <p>If AI automates routine alert triage, analysts who only do routine triage become less necessary. But analysts who can investigate complex incidents, hunt for threats proactively, understand business context, communicate with stakeholders, and make judgment calls remain valuable.</p>

            <h2>Remote Work in Security</h2>

            <p>Security roles have embraced remote work more than many fields. Job posting data suggests roughly 30-40% of security positions now offer remote options. This varies by role type: GRC and analyst roles often work remote. SOC roles sometimes require on-site presence. Government and cleared positions often have on-site requirements.</p>

            <p>Remote work expands your geographic options—you can apply to companies in high-paying markets while living in lower cost-of-living areas. But you're also competing against candidates from everywhere.</p>

            <h2>What This Means for Your Career</h2>

            <h3>Entering the Field</h3>

            <p>The structural shortage means opportunities exist for people willing to build real skills. That said, "qualified" still means something. The shortage is for competent security professionals, not warm bodies. Invest in building real capabilities rather than just collecting credentials.</p>

            <h3>Specialization Choices</h3>

            <p>Current high-demand specializations: cloud security (AWS, Azure, GCP), application security and DevSecOps, AI and ML security (emerging), incident response leadership. These premiums shift over time. Building a strong generalist foundation first gives you flexibility to specialize where opportunity emerges.</p>

            <h3>Long-Term Outlook</h3>

            <p>Is cybersecurity "recession-proof"? No field truly is. But security has characteristics that provide stability: it's increasingly a regulatory requirement, threats don't disappear in recessions (often increase), and the structural skills gap provides buffer.</p>
`
	s += Callout("The Opportunity Window", "The talent shortage isn't closing anytime soon. But the best time to enter is while demand dramatically outpaces supply. Building skills now positions you to benefit from favorable market conditions for years to come.", false)
	return s
}
